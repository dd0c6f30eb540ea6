package repositories

import (
	"contactboard/internal/models"
)

// ContactRepository defines the interface for contact data access.
type ContactRepository interface {
	List(q ListQuery) ([]models.Contact, error)
	GetByID(id string) (*models.Contact, error)
	GetByEmail(email string) (*models.Contact, error)
	Create(contact *models.Contact) error
	Update(contact *models.Contact) error
	Delete(id string) error
	// DistinctGroups returns the alphabetically sorted set of group values
	// currently in use, recomputed on every call.
	DistinctGroups() ([]string, error)
}
