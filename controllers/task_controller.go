package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ALjabriOmars/SCSP/pkg/resp"
	"github.com/ALjabriOmars/SCSP/services"

	"github.com/gin-gonic/gin"
)

type CreateTaskRequest struct {
	Description string `json:"description"`
	Department  string `json:"department"`
	Resources   string `json:"resources"`
	Timeline    string `json:"timeline"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

type TaskController struct {
	service *services.TaskService
}

func NewTaskController(service *services.TaskService) *TaskController {
	return &TaskController{service: service}
}

// POST /api/tasks
func (tc *TaskController) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Missing fields")
		return
	}

	task, err := tc.service.Create(req.Description, req.Department, req.Resources, req.Timeline)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, "Missing fields")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// GET /api/tasks — active และ suspended เท่านั้น
func (tc *TaskController) List(c *gin.Context) {
	tasks, err := tc.service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// PATCH /api/tasks/:id/status
func (tc *TaskController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Task not found")
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid status")
		return
	}

	deleted, err := tc.service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "Task not found")
			return
		}
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, "Invalid status")
			return
		}
		resp.ServerError(c, err)
		return
	}

	if deleted {
		resp.OK(c, "Task deleted")
		return
	}
	resp.OK(c, "Task updated to "+req.Status)
}
