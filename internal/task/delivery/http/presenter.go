package http

import (
	"time"

	"planora-api/internal/model"
	"planora-api/internal/task"
)

type createTaskReq struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority"`
	AssignedTo  *string    `json:"assigned_to"`
}

func (req createTaskReq) toInput(planID string) task.CreateTaskInput {
	return task.CreateTaskInput{
		PlanID:      planID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		AssignedTo:  req.AssignedTo,
	}
}

type updateTaskReq struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	AssignedTo  *string    `json:"assigned_to"`
}

func (req updateTaskReq) toInput(planID, taskID string) task.UpdateTaskInput {
	return task.UpdateTaskInput{
		PlanID:      planID,
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
	}
}

type taskResp struct {
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
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		PlanID:      t.PlanID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Status:      t.Status,
		AssignedTo:  t.AssignedTo,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	resps := make([]taskResp, 0, len(tasks))
	for _, t := range tasks {
		resps = append(resps, newTaskResp(t))
	}

	return resps
}
