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

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// ListByOwner returns the caller's contacts, most recent first.
func (s *ContactService) ListByOwner(ownerID string) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.db.Scopes(identity.OwnedBy(ownerID)).Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (s *ContactService) CreateForOwner(ownerID string, req *dto.CreateContactRequest) (*models.Contact, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, ErrFullNameRequired
	}

	contact := models.Contact{
		ID:        uuid.New(),
		FullName:  fullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Title:     req.Title,
		Channel:   req.Channel,
		AccountID: req.AccountID,
		OwnerID:   ownerID,
	}

	if err := s.db.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return &contact, nil
}
