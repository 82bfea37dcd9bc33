package services

import (
	"fmt"
	"strings"

	"github.com/colipio/gtm-backend/internal/dto"
	"github.com/colipio/gtm-backend/internal/identity"
	"github.com/colipio/gtm-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// ListByOwner returns the caller's accounts, most recent first.
func (s *AccountService) ListByOwner(ownerID string) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Scopes(identity.OwnedBy(ownerID)).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// CreateForOwner creates an account owned by the caller. The owner is always
// the verified subject; the request body cannot override it.
func (s *AccountService) CreateForOwner(ownerID string, req *dto.CreateAccountRequest) (*models.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	account := models.Account{
		ID:       uuid.New(),
		Name:     name,
		Industry: req.Industry,
		Website:  req.Website,
		OwnerID:  ownerID,
	}

	if err := s.db.Create(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &account, nil
}
