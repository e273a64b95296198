package models

import "time"

// Inquiry represents a contact form submission. Inquiries are created by the
// public contact form and are read-only afterward except for admin deletion.
type Inquiry struct {
	ID        uint64    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:varchar(80);not null"`
	Email     string    `json:"email" db:"email" gorm:"type:varchar(120);not null"`
	Message   string    `json:"message" db:"message" gorm:"type:varchar(2000);not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`
}
