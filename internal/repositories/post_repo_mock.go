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

// MockPostRepository is an in-memory implementation of PostRepository.
type MockPostRepository struct {
	posts map[string]models.Post
	mu    sync.RWMutex
}

// NewMockPostRepository creates a new instance of MockPostRepository.
func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		posts: make(map[string]models.Post),
	}
}

// List returns posts matching the query plus the total match count.
func (r *MockPostRepository) List(q ListQuery) ([]models.Post, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Post, 0, len(r.posts))
	search := strings.ToLower(q.Search)
	for _, p := range r.posts {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		matched = append(matched, p)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if q.SortsByName() {
			a, b := strings.ToLower(matched[i].Name), strings.ToLower(matched[j].Name)
			if q.Sort == SortDesc {
				return a > b
			}
			return a < b
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, int64(len(matched)), nil
}

// GetByID returns a post by its ID.
func (r *MockPostRepository) GetByID(id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post with ID %s: %w", id, ErrNotFound)
	}
	return &post, nil
}

// Create adds a new post.
func (r *MockPostRepository) Create(post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now
	r.posts[post.ID] = *post
	return nil
}

// Update modifies an existing post.
func (r *MockPostRepository) Update(post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[post.ID]; !ok {
		return fmt.Errorf("post with ID %s: %w", post.ID, ErrNotFound)
	}
	post.UpdatedAt = time.Now()
	r.posts[post.ID] = *post
	return nil
}

// Delete removes a post by its ID.
func (r *MockPostRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("post with ID %s: %w", id, ErrNotFound)
	}
	delete(r.posts, id)
	return nil
}
