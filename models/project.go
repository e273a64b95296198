package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project represents a portfolio project shown on the public site and
// managed through the admin panel.
type Project struct {
	ID          uint64                      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title       string                      `json:"title" db:"title" gorm:"type:varchar(140);not null"`
	Slug        string                      `json:"slug" db:"slug" gorm:"type:varchar(160);not null;index"`
	Excerpt     *string                     `json:"excerpt" db:"excerpt" gorm:"type:varchar(240)"`
	Description *string                     `json:"description,omitempty" db:"description" gorm:"type:text"`
	Stack       datatypes.JSONSlice[string] `json:"stack" db:"stack" gorm:"type:json"`
	URL         *string                     `json:"url" db:"url" gorm:"type:varchar(255)"`
	ImagePath   *string                     `json:"image_path" db:"image_path" gorm:"type:varchar(255)"`
	IsFeatured  bool                        `json:"is_featured" db:"is_featured" gorm:"not null;default:false;index"`
	SortOrder   int                         `json:"sort_order" db:"sort_order" gorm:"not null;default:0;index"`
	CreatedAt   time.Time                   `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`
}
