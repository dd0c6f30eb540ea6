package repositories_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"contactboard/internal/models"
	"contactboard/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbCounter int

// openTestDB opens a fresh in-memory SQLite database. The DSN is named per
// call because cache=shared would otherwise leak data between tests.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbCounter++
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", dbCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Contact{}, &models.Post{}))
	return db
}

// Both implementations must expose identical query and error semantics, so
// the behavioral tests run against each.
func contactRepos(t *testing.T) map[string]repositories.ContactRepository {
	return map[string]repositories.ContactRepository{
		"gorm":   repositories.NewGORMContactRepository(openTestDB(t)),
		"memory": repositories.NewMockContactRepository(),
	}
}

func seedContacts(t *testing.T, repo repositories.ContactRepository) {
	t.Helper()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	contacts := []models.Contact{
		{Name: "alice", Email: "alice@example.com", Group: "work", CreatedAt: base},
		{Name: "Bob", Email: "bob@example.com", Group: "family", CreatedAt: base.Add(1 * time.Hour)},
		{Name: "Charlie", Email: "charlie@example.com", CreatedAt: base.Add(2 * time.Hour)},
		{Name: "dave", Email: "dave@example.com", Group: "work", CreatedAt: base.Add(3 * time.Hour)},
	}
	for i := range contacts {
		require.NoError(t, repo.Create(&contacts[i]))
	}
}

func contactNames(contacts []models.Contact) []string {
	names := make([]string, 0, len(contacts))
	for _, c := range contacts {
		names = append(names, c.Name)
	}
	return names
}

func TestContactRepositoryListSorting(t *testing.T) {
	for name, repo := range contactRepos(t) {
		t.Run(name, func(t *testing.T) {
			seedContacts(t, repo)

			asc, err := repo.List(repositories.ListQuery{Sort: repositories.SortAsc})
			assert.NoError(t, err)
			assert.Equal(t, []string{"alice", "Bob", "Charlie", "dave"}, contactNames(asc))

			desc, err := repo.List(repositories.ListQuery{Sort: repositories.SortDesc})
			assert.NoError(t, err)
			assert.Equal(t, []string{"dave", "Charlie", "Bob", "alice"}, contactNames(desc))

			// Absent or invalid sort falls back to newest created first.
			newest, err := repo.List(repositories.ListQuery{})
			assert.NoError(t, err)
			assert.Equal(t, []string{"dave", "Charlie", "Bob", "alice"}, contactNames(newest))

			invalid, err := repo.List(repositories.ListQuery{Sort: "sideways"})
			assert.NoError(t, err)
			assert.Equal(t, []string{"dave", "Charlie", "Bob", "alice"}, contactNames(invalid))
		})
	}
}

func TestContactRepositoryListSearchAndFilter(t *testing.T) {
	for name, repo := range contactRepos(t) {
		t.Run(name, func(t *testing.T) {
			seedContacts(t, repo)

			// Search is a case-insensitive substring match on name.
			found, err := repo.List(repositories.ListQuery{Search: "ALI"})
			assert.NoError(t, err)
			assert.Equal(t, []string{"alice"}, contactNames(found))

			found, err = repo.List(repositories.ListQuery{Search: "li", Sort: repositories.SortAsc})
			assert.NoError(t, err)
			assert.Equal(t, []string{"alice", "Charlie"}, contactNames(found))

			// Group filter is an exact match; "all" disables it.
			work, err := repo.List(repositories.ListQuery{Group: "work", Sort: repositories.SortAsc})
			assert.NoError(t, err)
			assert.Equal(t, []string{"alice", "dave"}, contactNames(work))

			everyone, err := repo.List(repositories.ListQuery{Group: repositories.GroupAll})
			assert.NoError(t, err)
			assert.Len(t, everyone, 4)

			// Search and filter compose.
			both, err := repo.List(repositories.ListQuery{Search: "a", Group: "work", Sort: repositories.SortAsc})
			assert.NoError(t, err)
			assert.Equal(t, []string{"alice", "dave"}, contactNames(both))
		})
	}
}

func TestContactRepositoryDuplicateEmail(t *testing.T) {
	for name, repo := range contactRepos(t) {
		t.Run(name, func(t *testing.T) {
			first := models.Contact{Name: "First", Email: "dup@example.com"}
			require.NoError(t, repo.Create(&first))

			second := models.Contact{Name: "Second", Email: "dup@example.com"}
			err := repo.Create(&second)
			assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)

			// Emails match case-sensitively, so a different casing is a
			// different address.
			third := models.Contact{Name: "Third", Email: "DUP@example.com"}
			assert.NoError(t, repo.Create(&third))
		})
	}
}

func TestContactRepositoryNotFound(t *testing.T) {
	for name, repo := range contactRepos(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.GetByID("missing")
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			_, err = repo.GetByEmail("missing@example.com")
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			err = repo.Update(&models.Contact{ID: "missing", Name: "X", Email: "x@example.com"})
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			// The failed update must not fall back to an insert.
			contacts, err := repo.List(repositories.ListQuery{})
			require.NoError(t, err)
			assert.Empty(t, contacts)

			err = repo.Delete("missing")
			assert.ErrorIs(t, err, repositories.ErrNotFound)
		})
	}
}

func TestContactRepositoryDistinctGroups(t *testing.T) {
	for name, repo := range contactRepos(t) {
		t.Run(name, func(t *testing.T) {
			groups, err := repo.DistinctGroups()
			assert.NoError(t, err)
			assert.Empty(t, groups)

			seedContacts(t, repo)

			groups, err = repo.DistinctGroups()
			assert.NoError(t, err)
			assert.Equal(t, []string{"family", "work"}, groups)

			// Deleting the only family contact removes the group on the
			// next read; nothing is cached.
			contacts, err := repo.List(repositories.ListQuery{Group: "family"})
			require.NoError(t, err)
			require.Len(t, contacts, 1)
			require.NoError(t, repo.Delete(contacts[0].ID))

			groups, err = repo.DistinctGroups()
			assert.NoError(t, err)
			assert.Equal(t, []string{"work"}, groups)
		})
	}
}

func TestContactRepositoryCreateAssignsID(t *testing.T) {
	for name, repo := range contactRepos(t) {
		t.Run(name, func(t *testing.T) {
			contact := models.Contact{Name: "NoID", Email: "noid@example.com"}
			require.NoError(t, repo.Create(&contact))
			assert.NotEmpty(t, contact.ID)

			fetched, err := repo.GetByID(contact.ID)
			assert.NoError(t, err)
			assert.Equal(t, "NoID", fetched.Name)
		})
	}
}

func TestContactRepositoryUpdateReplacesFields(t *testing.T) {
	for name, repo := range contactRepos(t) {
		t.Run(name, func(t *testing.T) {
			contact := models.Contact{Name: "Before", Email: "before@example.com", Phone: "123", Group: "work"}
			require.NoError(t, repo.Create(&contact))

			contact.Name = "After"
			contact.Email = "after@example.com"
			contact.Phone = ""
			contact.Group = ""
			require.NoError(t, repo.Update(&contact))

			fetched, err := repo.GetByID(contact.ID)
			require.NoError(t, err)
			assert.Equal(t, "After", fetched.Name)
			assert.Equal(t, "after@example.com", fetched.Email)
			assert.Empty(t, fetched.Phone)
			assert.Empty(t, fetched.Group)

			_, err = repo.GetByEmail("before@example.com")
			assert.True(t, errors.Is(err, repositories.ErrNotFound))
		})
	}
}
