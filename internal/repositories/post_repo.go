package repositories

import (
	"contactboard/internal/models"
)

// PostRepository defines the interface for post data access.
type PostRepository interface {
	// List returns the matching posts together with the total match count.
	List(q ListQuery) ([]models.Post, int64, error)
	GetByID(id string) (*models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(id string) error
}
