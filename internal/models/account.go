package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is a company/organization the GTM team is tracking.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Industry  *string   `gorm:"size:255" json:"industry"`
	Website   *string   `gorm:"size:255" json:"website"`
	OwnerID   string    `gorm:"size:255;not null;index" json:"owner_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
