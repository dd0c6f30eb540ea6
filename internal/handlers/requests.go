package handlers

import (
	"strings"

	"contactboard/internal/models"
)

// ContactRequest is the request body for contact create and update calls.
// Updates are full replacements, so the same shape serves both.
type ContactRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,contact_email"`
	Phone string `json:"phone" validate:"omitempty,max=50"`
	Group string `json:"group" validate:"omitempty,max=100"`
}

// normalize trims surrounding whitespace from every field before validation.
func (r *ContactRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Group = strings.TrimSpace(r.Group)
}

func (r *ContactRequest) toModel() *models.Contact {
	return &models.Contact{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Group: r.Group,
	}
}

// PostRequest is the request body for post create and update calls.
// An empty imageUrl means the post has no image, not a validation error.
type PostRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=1000"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,image_url"`
}

func (r *PostRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
}

func (r *PostRequest) toModel() *models.Post {
	return &models.Post{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}
