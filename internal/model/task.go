package model

import (
	"time"

	"planora-api/internal/dbmodels"
)

// Task priority values.
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// Task status values.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

// Task represents a to-do item attached to a plan.
type Task struct {
	ID          string     `json:"id"`
	PlanID      string     `json:"plan_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsValidTaskPriority reports whether p is an accepted task priority.
func IsValidTaskPriority(p string) bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// IsValidTaskStatus reports whether s is an accepted task status.
func IsValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// NewTaskFromDB converts a database EventTask row to a domain Task model.
func NewTaskFromDB(dbTask *dbmodels.EventTask) *Task {
	task := &Task{
		ID:        dbTask.ID,
		PlanID:    dbTask.PlanID,
		Title:     dbTask.Title,
		Priority:  dbTask.Priority,
		Status:    dbTask.Status,
		CreatedAt: dbTask.CreatedAt.Time,
		UpdatedAt: dbTask.UpdatedAt.Time,
	}

	if dbTask.Description.Valid {
		task.Description = &dbTask.Description.String
	}
	if dbTask.DueDate.Valid {
		task.DueDate = &dbTask.DueDate.Time
	}
	if dbTask.AssignedTo.Valid {
		task.AssignedTo = &dbTask.AssignedTo.String
	}
	if dbTask.CompletedAt.Valid {
		task.CompletedAt = &dbTask.CompletedAt.Time
	}

	return task
}
