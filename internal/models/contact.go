package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a person at an Account.
type Contact struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  string     `gorm:"size:255;not null" json:"full_name"`
	Email     *string    `gorm:"size:255" json:"email"`
	Phone     *string    `gorm:"size:50" json:"phone"`
	Title     *string    `gorm:"size:255" json:"title"`
	Channel   *string    `gorm:"size:50" json:"channel"`
	AccountID *uuid.UUID `gorm:"type:uuid;index" json:"account_id"`
	OwnerID   string     `gorm:"size:255;not null;index" json:"owner_id"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
