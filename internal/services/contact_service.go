package services

import (
	"errors"
	"fmt"

	"contactboard/internal/models"
	"contactboard/internal/repositories"
)

// ContactService handles business logic related to contacts.
type ContactService struct {
	repo repositories.ContactRepository
}

// NewContactService creates a new ContactService.
func NewContactService(repo repositories.ContactRepository) *ContactService {
	return &ContactService{
		repo: repo,
	}
}

// ListContacts retrieves contacts matching the given query.
func (s *ContactService) ListContacts(q repositories.ListQuery) ([]models.Contact, error) {
	return s.repo.List(q)
}

// GetContactByID retrieves a single contact by its ID.
func (s *ContactService) GetContactByID(id string) (*models.Contact, error) {
	return s.repo.GetByID(id)
}

// CreateContact creates a new contact. The email address must not already be
// in use: a lookup rejects the common case with a clear error, and the unique
// index underneath closes the window between check and insert.
func (s *ContactService) CreateContact(contact *models.Contact) error {
	existing, err := s.repo.GetByEmail(contact.Email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check for existing email: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("contact with email %s: %w", contact.Email, repositories.ErrDuplicateEmail)
	}
	return s.repo.Create(contact)
}

// UpdateContact replaces every editable field of an existing contact and
// returns the updated record.
func (s *ContactService) UpdateContact(id string, data *models.Contact) (*models.Contact, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if data.Email != existing.Email {
		other, err := s.repo.GetByEmail(data.Email)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to check for existing email: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, fmt.Errorf("contact with email %s: %w", data.Email, repositories.ErrDuplicateEmail)
		}
	}

	existing.Name = data.Name
	existing.Email = data.Email
	existing.Phone = data.Phone
	existing.Group = data.Group
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteContact deletes a contact by its ID.
func (s *ContactService) DeleteContact(id string) error {
	return s.repo.Delete(id)
}

// ContactGroups returns the sorted set of group values currently in use.
func (s *ContactService) ContactGroups() ([]string, error) {
	return s.repo.DistinctGroups()
}
