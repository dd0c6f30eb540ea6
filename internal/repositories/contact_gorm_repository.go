package repositories

import (
	"errors"
	"fmt"
	"strings"

	"contactboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMContactRepository is a GORM implementation of ContactRepository.
type GORMContactRepository struct {
	db *gorm.DB
}

// NewGORMContactRepository creates a new instance of GORMContactRepository.
func NewGORMContactRepository(db *gorm.DB) *GORMContactRepository {
	return &GORMContactRepository{
		db: db,
	}
}

// List retrieves contacts matching the query, ordered per its sort directive.
func (r *GORMContactRepository) List(q ListQuery) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0)
	tx := r.db.Model(&models.Contact{})
	if q.Search != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}
	if q.HasGroupFilter() {
		tx = tx.Where("group_name = ?", q.Group)
	}
	if err := tx.Order(orderClause(q)).Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// GetByID retrieves a single contact by its ID from the database.
func (r *GORMContactRepository) GetByID(id string) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contact with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get contact by ID %s: %w", id, err)
	}
	return &contact, nil
}

// GetByEmail retrieves a single contact by its email address.
func (r *GORMContactRepository) GetByEmail(email string) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contact with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get contact by email %s: %w", email, err)
	}
	return &contact, nil
}

// Create inserts a new contact, assigning an ID when none is set. A unique
// index on email backs the duplicate check, so two concurrent creates with
// the same address cannot both succeed.
func (r *GORMContactRepository) Create(contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if err := r.db.Create(contact).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("contact with email %s: %w", contact.Email, ErrDuplicateEmail)
		}
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// Update replaces every field of an existing contact. A selected Updates is
// used instead of Save: Save falls back to an insert when the UPDATE matches
// no rows, which would silently resurrect a deleted id.
func (r *GORMContactRepository) Update(contact *models.Contact) error {
	res := r.db.Model(&models.Contact{}).
		Where("id = ?", contact.ID).
		Select("*").
		Updates(contact) // Select("*") writes all fields, including zero values
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("contact with email %s: %w", contact.Email, ErrDuplicateEmail)
		}
		return fmt.Errorf("failed to update contact: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("contact with ID %s: %w", contact.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a contact by its ID.
func (r *GORMContactRepository) Delete(id string) error {
	res := r.db.Delete(&models.Contact{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("contact with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// DistinctGroups returns the sorted distinct non-empty group values.
func (r *GORMContactRepository) DistinctGroups() ([]string, error) {
	groups := make([]string, 0)
	err := r.db.Model(&models.Contact{}).
		Where("group_name IS NOT NULL AND group_name <> ''").
		Distinct().
		Order("group_name ASC").
		Pluck("group_name", &groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct groups: %w", err)
	}
	return groups, nil
}
