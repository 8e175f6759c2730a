package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/pkg/response"
	"planora-api/pkg/scope"
)

// Create creates a task on a plan.
func (h handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.task.delivery.http.Create: bind body: %v", err)
		response.Error(c, err, h.d)
		return
	}

	t, err := h.uc.Create(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.Created(c, newTaskResp(t))
}

// List returns the tasks of a plan.
func (h handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	tasks, err := h.uc.List(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newTaskResps(tasks))
}

// Update updates a task, typically its status.
func (h handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.task.delivery.http.Update: bind body: %v", err)
		response.Error(c, err, h.d)
		return
	}

	t, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id"), c.Param("task_id")))
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete removes a task from a plan.
func (h handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id"), c.Param("task_id")); err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, nil)
}
