package models

import (
	"time"

	"github.com/google/uuid"
)

// Deal is a sales opportunity moving through the pipeline.
type Deal struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Stage     string     `gorm:"size:50;not null" json:"stage"`
	Value     *float64   `json:"value"`
	Currency  string     `gorm:"size:10;not null" json:"currency"`
	OwnerID   string     `gorm:"size:255;not null;index" json:"owner_id"`
	AccountID *uuid.UUID `gorm:"type:uuid;index" json:"account_id"`
	ContactID *uuid.UUID `gorm:"type:uuid;index" json:"contact_id"`
	Source    *string    `gorm:"size:255" json:"source"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// DealStages is the pipeline in board order.
var DealStages = []string{"New", "Outreach", "Qualified", "Replied", "Opportunity", "Won", "Lost"}

const (
	DefaultDealStage    = "New"
	DefaultDealCurrency = "EUR"
)
