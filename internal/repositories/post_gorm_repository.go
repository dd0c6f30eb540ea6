package repositories

import (
	"errors"
	"fmt"
	"strings"

	"contactboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPostRepository is a GORM implementation of PostRepository.
type GORMPostRepository struct {
	db *gorm.DB
}

// NewGORMPostRepository creates a new instance of GORMPostRepository.
func NewGORMPostRepository(db *gorm.DB) *GORMPostRepository {
	return &GORMPostRepository{
		db: db,
	}
}

// List retrieves posts matching the query plus the total match count.
// Search covers both name and description.
func (r *GORMPostRepository) List(q ListQuery) ([]models.Post, int64, error) {
	posts := make([]models.Post, 0)
	tx := r.db.Model(&models.Post{})
	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}
	if err := tx.Order(orderClause(q)).Find(&posts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, total, nil
}

// GetByID retrieves a single post by its ID from the database.
func (r *GORMPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post by ID %s: %w", id, err)
	}
	return &post, nil
}

// Create inserts a new post, assigning an ID when none is set.
func (r *GORMPostRepository) Create(post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// Update replaces every field of an existing post. A selected Updates is
// used instead of Save: Save falls back to an insert when the UPDATE matches
// no rows, which would silently resurrect a deleted id.
func (r *GORMPostRepository) Update(post *models.Post) error {
	res := r.db.Model(&models.Post{}).
		Where("id = ?", post.ID).
		Select("*").
		Updates(post)
	if res.Error != nil {
		return fmt.Errorf("failed to update post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("post with ID %s: %w", post.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a post by its ID.
func (r *GORMPostRepository) Delete(id string) error {
	res := r.db.Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("post with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
