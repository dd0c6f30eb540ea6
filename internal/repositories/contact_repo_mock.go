package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"contactboard/internal/models"

	"github.com/google/uuid"
)

// MockContactRepository is an in-memory implementation of ContactRepository.
// It mirrors the GORM implementation's semantics, including the duplicate
// email rejection and query ordering, so it can stand in for a real store.
type MockContactRepository struct {
	contacts map[string]models.Contact
	mu       sync.RWMutex
}

// NewMockContactRepository creates a new instance of MockContactRepository.
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{
		contacts: make(map[string]models.Contact),
	}
}

// List returns contacts matching the query in the requested order.
func (r *MockContactRepository) List(q ListQuery) ([]models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Contact, 0, len(r.contacts))
	search := strings.ToLower(q.Search)
	for _, c := range r.contacts {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		if q.HasGroupFilter() && c.Group != q.Group {
			continue
		}
		matched = append(matched, c)
	}
	sortContacts(matched, q)
	return matched, nil
}

func sortContacts(contacts []models.Contact, q ListQuery) {
	sort.SliceStable(contacts, func(i, j int) bool {
		if q.SortsByName() {
			a, b := strings.ToLower(contacts[i].Name), strings.ToLower(contacts[j].Name)
			if q.Sort == SortDesc {
				return a > b
			}
			return a < b
		}
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})
}

// GetByID returns a contact by its ID.
func (r *MockContactRepository) GetByID(id string) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contact, ok := r.contacts[id]
	if !ok {
		return nil, fmt.Errorf("contact with ID %s: %w", id, ErrNotFound)
	}
	return &contact, nil
}

// GetByEmail returns a contact by its email address.
func (r *MockContactRepository) GetByEmail(email string) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contacts {
		if c.Email == email {
			contact := c
			return &contact, nil
		}
	}
	return nil, fmt.Errorf("contact with email %s: %w", email, ErrNotFound)
}

// Create adds a new contact, rejecting duplicate email addresses.
func (r *MockContactRepository) Create(contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.contacts {
		if c.Email == contact.Email {
			return fmt.Errorf("contact with email %s: %w", contact.Email, ErrDuplicateEmail)
		}
	}
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	now := time.Now()
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = now
	}
	contact.UpdatedAt = now
	r.contacts[contact.ID] = *contact
	return nil
}

// Update modifies an existing contact.
func (r *MockContactRepository) Update(contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[contact.ID]; !ok {
		return fmt.Errorf("contact with ID %s: %w", contact.ID, ErrNotFound)
	}
	for _, c := range r.contacts {
		if c.Email == contact.Email && c.ID != contact.ID {
			return fmt.Errorf("contact with email %s: %w", contact.Email, ErrDuplicateEmail)
		}
	}
	contact.UpdatedAt = time.Now()
	r.contacts[contact.ID] = *contact
	return nil
}

// Delete removes a contact by its ID.
func (r *MockContactRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[id]; !ok {
		return fmt.Errorf("contact with ID %s: %w", id, ErrNotFound)
	}
	delete(r.contacts, id)
	return nil
}

// DistinctGroups returns the sorted distinct non-empty group values.
func (r *MockContactRepository) DistinctGroups() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	groups := make([]string, 0)
	for _, c := range r.contacts {
		if c.Group != "" && !seen[c.Group] {
			seen[c.Group] = true
			groups = append(groups, c.Group)
		}
	}
	sort.Strings(groups)
	return groups, nil
}
