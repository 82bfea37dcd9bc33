package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work assigned to a user. The authorization field here is
// assigned_to, not owner_id: listing and updates are gated on the assignee.
type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:50;not null" json:"status"`
	DueDate     *time.Time `json:"due_date"`
	DealID      *uuid.UUID `gorm:"type:uuid;index" json:"deal_id"`
	AssignedTo  string     `gorm:"size:255;not null;index" json:"assigned_to"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

const DefaultTaskStatus = "pending"
