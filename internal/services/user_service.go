package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/colipio/gtm-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetOrCreateByAuthID resolves the identity provider's subject id to an
// internal user, creating the row on first contact. Two concurrent first
// requests can both see "not found" and both insert; the unique index on
// auth_id makes one of them lose, and the loser re-fetches the winner's row.
func (s *UserService) GetOrCreateByAuthID(authID, email string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "auth_id = ?", authID).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = models.User{
		ID:     uuid.New(),
		AuthID: authID,
		Email:  email,
	}

	err = s.db.Create(&user).Error
	if err == nil {
		return &user, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		slog.Info("lost user creation race, re-fetching", "auth_id", authID)
		var existing models.User
		if err := s.db.First(&existing, "auth_id = ?", authID).Error; err != nil {
			return nil, fmt.Errorf("failed to re-fetch user after conflict: %w", err)
		}
		return &existing, nil
	}
	return nil, fmt.Errorf("failed to create user: %w", err)
}
