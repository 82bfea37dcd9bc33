package services

import (
	"testing"

	"github.com/colipio/gtm-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCreateAppliesDefaults(t *testing.T) {
	svc := NewTaskService(newTestDB(t))

	task, err := svc.CreateForAssignee("u1", &dto.CreateTaskRequest{Title: "Follow up"})
	require.NoError(t, err)

	assert.Equal(t, "pending", task.Status)
	assert.Equal(t, "u1", task.AssignedTo)
	assert.Nil(t, task.DueDate)
}

func TestTaskCreateParsesDueDate(t *testing.T) {
	svc := NewTaskService(newTestDB(t))

	task, err := svc.CreateForAssignee("u1", &dto.CreateTaskRequest{
		Title:   "Send proposal",
		DueDate: strPtr("2026-09-15"),
	})
	require.NoError(t, err)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, 2026, task.DueDate.Year())
	assert.Equal(t, 15, task.DueDate.Day())

	task, err = svc.CreateForAssignee("u1", &dto.CreateTaskRequest{
		Title:   "Call back",
		DueDate: strPtr("2026-09-15T14:30:00Z"),
	})
	require.NoError(t, err)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, 14, task.DueDate.Hour())
}

func TestTaskCreateRejectsBadDueDate(t *testing.T) {
	svc := NewTaskService(newTestDB(t))

	_, err := svc.CreateForAssignee("u1", &dto.CreateTaskRequest{
		Title:   "Bad date",
		DueDate: strPtr("next tuesday"),
	})
	assert.ErrorIs(t, err, ErrInvalidDueDate)

	_, err = svc.CreateForAssignee("u1", &dto.CreateTaskRequest{Title: ""})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestTaskListIsAssigneeScoped(t *testing.T) {
	svc := NewTaskService(newTestDB(t))

	_, err := svc.CreateForAssignee("u1", &dto.CreateTaskRequest{Title: "mine"})
	require.NoError(t, err)
	_, err = svc.CreateForAssignee("u2", &dto.CreateTaskRequest{Title: "theirs"})
	require.NoError(t, err)

	tasks, err := svc.ListByAssignee("u1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "mine", tasks[0].Title)
}

func TestTaskUpdateRejectsNonAssignee(t *testing.T) {
	svc := NewTaskService(newTestDB(t))

	task, err := svc.CreateForAssignee("u1", &dto.CreateTaskRequest{Title: "Follow up"})
	require.NoError(t, err)

	_, err = svc.UpdateForAssignee("u2", task.ID, &dto.UpdateTaskRequest{Status: strPtr("done")})
	assert.ErrorIs(t, err, ErrNotAllowed)

	tasks, err := svc.ListByAssignee("u1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "pending", tasks[0].Status)
}

func TestTaskUpdateByAssignee(t *testing.T) {
	svc := NewTaskService(newTestDB(t))

	task, err := svc.CreateForAssignee("u1", &dto.CreateTaskRequest{Title: "Follow up"})
	require.NoError(t, err)

	updated, err := svc.UpdateForAssignee("u1", task.ID, &dto.UpdateTaskRequest{
		Status:  strPtr("done"),
		DueDate: strPtr("2026-10-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "done", updated.Status)
	require.NotNil(t, updated.DueDate)
	assert.Equal(t, "u1", updated.AssignedTo)

	_, err = svc.UpdateForAssignee("u1", task.ID, &dto.UpdateTaskRequest{DueDate: strPtr("garbage")})
	assert.ErrorIs(t, err, ErrInvalidDueDate)
}
