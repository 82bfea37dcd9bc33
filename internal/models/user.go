package models

import (
	"time"

	"github.com/google/uuid"
)

// User maps an external identity-provider subject to an internal user row.
// Rows are created lazily on first authenticated request; the unique index on
// auth_id is what makes concurrent first requests converge on a single row.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AuthID    string    `gorm:"size:255;not null;uniqueIndex" json:"auth_id"`
	Email     string    `gorm:"size:255" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
