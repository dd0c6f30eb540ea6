package repositories_test

import (
	"testing"
	"time"

	"contactboard/internal/models"
	"contactboard/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postRepos(t *testing.T) map[string]repositories.PostRepository {
	return map[string]repositories.PostRepository{
		"gorm":   repositories.NewGORMPostRepository(openTestDB(t)),
		"memory": repositories.NewMockPostRepository(),
	}
}

func seedPosts(t *testing.T, repo repositories.PostRepository) {
	t.Helper()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	posts := []models.Post{
		{Name: "Autumn walk", Description: "Leaves in the park", CreatedAt: base},
		{Name: "baking day", Description: "Sourdough attempt", CreatedAt: base.Add(1 * time.Hour)},
		{Name: "City lights", Description: "Night photography", ImageURL: "/uploads/city.png", CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range posts {
		require.NoError(t, repo.Create(&posts[i]))
	}
}

func postNames(posts []models.Post) []string {
	names := make([]string, 0, len(posts))
	for _, p := range posts {
		names = append(names, p.Name)
	}
	return names
}

func TestPostRepositoryListReturnsTotal(t *testing.T) {
	for name, repo := range postRepos(t) {
		t.Run(name, func(t *testing.T) {
			seedPosts(t, repo)

			posts, total, err := repo.List(repositories.ListQuery{Sort: repositories.SortAsc})
			assert.NoError(t, err)
			assert.EqualValues(t, 3, total)
			assert.Equal(t, []string{"Autumn walk", "baking day", "City lights"}, postNames(posts))

			posts, total, err = repo.List(repositories.ListQuery{Sort: repositories.SortDesc})
			assert.NoError(t, err)
			assert.EqualValues(t, 3, total)
			assert.Equal(t, []string{"City lights", "baking day", "Autumn walk"}, postNames(posts))

			posts, total, err = repo.List(repositories.ListQuery{})
			assert.NoError(t, err)
			assert.EqualValues(t, 3, total)
			assert.Equal(t, []string{"City lights", "baking day", "Autumn walk"}, postNames(posts))
		})
	}
}

func TestPostRepositorySearchCoversDescription(t *testing.T) {
	for name, repo := range postRepos(t) {
		t.Run(name, func(t *testing.T) {
			seedPosts(t, repo)

			// Matches the name of one post.
			posts, total, err := repo.List(repositories.ListQuery{Search: "autumn"})
			assert.NoError(t, err)
			assert.EqualValues(t, 1, total)
			assert.Equal(t, []string{"Autumn walk"}, postNames(posts))

			// Matches only in the description.
			posts, total, err = repo.List(repositories.ListQuery{Search: "SOURDOUGH"})
			assert.NoError(t, err)
			assert.EqualValues(t, 1, total)
			assert.Equal(t, []string{"baking day"}, postNames(posts))

			posts, total, err = repo.List(repositories.ListQuery{Search: "no such thing"})
			assert.NoError(t, err)
			assert.EqualValues(t, 0, total)
			assert.Empty(t, posts)
		})
	}
}

func TestPostRepositoryNotFound(t *testing.T) {
	for name, repo := range postRepos(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.GetByID("missing")
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			err = repo.Update(&models.Post{ID: "missing", Name: "X", Description: "Y"})
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			// The failed update must not fall back to an insert.
			posts, total, err := repo.List(repositories.ListQuery{})
			require.NoError(t, err)
			assert.EqualValues(t, 0, total)
			assert.Empty(t, posts)

			err = repo.Delete("missing")
			assert.ErrorIs(t, err, repositories.ErrNotFound)
		})
	}
}

func TestPostRepositoryCRUD(t *testing.T) {
	for name, repo := range postRepos(t) {
		t.Run(name, func(t *testing.T) {
			post := models.Post{Name: "Draft", Description: "First cut"}
			require.NoError(t, repo.Create(&post))
			assert.NotEmpty(t, post.ID)

			post.Name = "Published"
			post.ImageURL = "https://example.com/cover.png"
			require.NoError(t, repo.Update(&post))

			fetched, err := repo.GetByID(post.ID)
			require.NoError(t, err)
			assert.Equal(t, "Published", fetched.Name)
			assert.Equal(t, "https://example.com/cover.png", fetched.ImageURL)

			require.NoError(t, repo.Delete(post.ID))
			_, err = repo.GetByID(post.ID)
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			// An update racing with the delete must not bring the record back.
			err = repo.Update(&post)
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			_, total, err := repo.List(repositories.ListQuery{})
			assert.NoError(t, err)
			assert.EqualValues(t, 0, total)
		})
	}
}
