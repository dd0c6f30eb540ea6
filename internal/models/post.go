package models

import "time"

// Post represents a published post. ImageURL is either an absolute external
// URL or a relative path returned by the upload endpoint; empty means the
// post has no image.
type Post struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Description string    `json:"description" gorm:"type:varchar(1000);not null"`
	ImageURL    string    `json:"imageUrl,omitempty" gorm:"column:image_url;type:varchar(2048)"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
