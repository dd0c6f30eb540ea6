package services

import (
	"contactboard/internal/models"
	"contactboard/internal/repositories"
)

// PostService handles business logic related to posts.
type PostService struct {
	repo repositories.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(repo repositories.PostRepository) *PostService {
	return &PostService{
		repo: repo,
	}
}

// ListPosts retrieves posts matching the given query plus the total count.
func (s *PostService) ListPosts(q repositories.ListQuery) ([]models.Post, int64, error) {
	return s.repo.List(q)
}

// GetPostByID retrieves a single post by its ID.
func (s *PostService) GetPostByID(id string) (*models.Post, error) {
	return s.repo.GetByID(id)
}

// CreatePost creates a new post.
func (s *PostService) CreatePost(post *models.Post) error {
	return s.repo.Create(post)
}

// UpdatePost replaces every editable field of an existing post and returns
// the updated record.
func (s *PostService) UpdatePost(id string, data *models.Post) (*models.Post, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = data.Name
	existing.Description = data.Description
	existing.ImageURL = data.ImageURL
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeletePost deletes a post by its ID.
func (s *PostService) DeletePost(id string) error {
	return s.repo.Delete(id)
}
