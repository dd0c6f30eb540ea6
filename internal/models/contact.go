package models

import "time"

// Contact represents a single address-book entry.
// The group is a free-form label; the set of available groups is whatever
// values are currently in use, there is no managed group entity.
type Contact struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Phone     string    `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Group     string    `json:"group,omitempty" gorm:"column:group_name;type:varchar(100)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
