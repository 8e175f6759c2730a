package task

import "time"

// CreateTaskInput is the input for creating a task on a plan.
type CreateTaskInput struct {
	PlanID      string
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    *string
	AssignedTo  *string
}

// UpdateTaskInput is the input for updating a task. Nil fields are left
// untouched.
type UpdateTaskInput struct {
	PlanID      string
	TaskID      string
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *string
	Status      *string
	AssignedTo  *string
}

// CreateTaskOption is the option to create a task row.
type CreateTaskOption struct {
	PlanID      string
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    string
	Status      string
	AssignedTo  *string
}

// UpdateTaskOption is the option to update a task row.
type UpdateTaskOption struct {
	ID          string
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *string
	Status      *string
	AssignedTo  *string
	// CompletedAt is managed by the usecase when the status changes.
	CompletedAt *time.Time
	// ClearCompletedAt resets completed_at when a completed task is
	// reopened.
	ClearCompletedAt bool
}
