package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/colipio/gtm-backend/internal/dto"
	"github.com/colipio/gtm-backend/internal/identity"
	"github.com/colipio/gtm-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// ListByAssignee returns the caller's tasks, most recent first.
func (s *TaskService) ListByAssignee(userID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Scopes(identity.AssignedTo(userID)).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateForAssignee creates a task assigned to the caller. An unparseable
// due_date is rejected rather than stored as null.
func (s *TaskService) CreateForAssignee(userID string, req *dto.CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	status := models.DefaultTaskStatus
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		status = strings.TrimSpace(*req.Status)
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: req.Description,
		Status:      status,
		DueDate:     dueDate,
		DealID:      req.DealID,
		AssignedTo:  userID,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &task, nil
}

// UpdateForAssignee applies a partial update after the assignee gate: nothing
// is written unless the task exists and is assigned to the caller.
func (s *TaskService) UpdateForAssignee(userID string, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	var task models.Task
	err := s.db.First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotAllowed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	if task.AssignedTo != userID {
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
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		updates["status"] = strings.TrimSpace(*req.Status)
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		updates["due_date"] = dueDate
	}
	if req.DealID != nil {
		updates["deal_id"] = *req.DealID
	}

	if len(updates) == 0 {
		return &task, nil
	}

	if err := s.db.Model(&task).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &task, nil
}

// parseDueDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	value := strings.TrimSpace(*raw)

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	return nil, ErrInvalidDueDate
}
