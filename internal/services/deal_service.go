package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/colipio/gtm-backend/internal/dto"
	"github.com/colipio/gtm-backend/internal/identity"
	"github.com/colipio/gtm-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DealService struct {
	db *gorm.DB
}

func NewDealService(db *gorm.DB) *DealService {
	return &DealService{db: db}
}

// ListByOwner returns the caller's deals, most recent first.
func (s *DealService) ListByOwner(ownerID string) ([]models.Deal, error) {
	var deals []models.Deal
	if err := s.db.Scopes(identity.OwnedBy(ownerID)).Order("created_at DESC").Find(&deals).Error; err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	return deals, nil
}

// CreateForOwner creates a deal owned by the caller with pipeline defaults
// applied: stage "New" and currency "EUR" unless the body says otherwise.
func (s *DealService) CreateForOwner(ownerID string, req *dto.CreateDealRequest) (*models.Deal, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	stage := models.DefaultDealStage
	if req.Stage != nil {
		if !validStage(*req.Stage) {
			return nil, ErrInvalidStage
		}
		stage = *req.Stage
	}

	currency := models.DefaultDealCurrency
	if req.Currency != nil && strings.TrimSpace(*req.Currency) != "" {
		currency = strings.TrimSpace(*req.Currency)
	}

	deal := models.Deal{
		ID:        uuid.New(),
		Title:     title,
		Stage:     stage,
		Value:     req.Value,
		Currency:  currency,
		OwnerID:   ownerID,
		AccountID: req.AccountID,
		ContactID: req.ContactID,
		Source:    req.Source,
	}

	if err := s.db.Create(&deal).Error; err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}

	return &deal, nil
}

// UpdateForOwner applies a partial update to a deal after the ownership gate:
// the row is read first and nothing is written unless it exists and belongs
// to the caller.
func (s *DealService) UpdateForOwner(ownerID string, id uuid.UUID, req *dto.UpdateDealRequest) (*models.Deal, error) {
	var deal models.Deal
	err := s.db.First(&deal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotAllowed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load deal: %w", err)
	}
	if deal.OwnerID != ownerID {
		return nil, ErrNotAllowed
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			return nil, ErrTitleRequired
		}
		updates["title"] = trimmed
	}
	if req.Stage != nil {
		if !validStage(*req.Stage) {
			return nil, ErrInvalidStage
		}
		updates["stage"] = *req.Stage
	}
	if req.Value != nil {
		updates["value"] = *req.Value
	}
	if req.Currency != nil && strings.TrimSpace(*req.Currency) != "" {
		updates["currency"] = strings.TrimSpace(*req.Currency)
	}
	if req.AccountID != nil {
		updates["account_id"] = *req.AccountID
	}
	if req.ContactID != nil {
		updates["contact_id"] = *req.ContactID
	}
	if req.Source != nil {
		updates["source"] = *req.Source
	}

	if len(updates) == 0 {
		return &deal, nil
	}

	if err := s.db.Model(&deal).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}

	return &deal, nil
}

func validStage(stage string) bool {
	for _, s := range models.DealStages {
		if s == stage {
			return true
		}
	}
	return false
}
