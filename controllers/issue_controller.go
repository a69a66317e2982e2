package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ALjabriOmars/SCSP/pkg/resp"
	"github.com/ALjabriOmars/SCSP/services"

	"github.com/gin-gonic/gin"
)

type ReportIssueRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type IssueController struct {
	service *services.IssueService
}

func NewIssueController(service *services.IssueService) *IssueController {
	return &IssueController{service: service}
}

// POST /api/issues/report
func (ic *IssueController) Report(c *gin.Context) {
	var req ReportIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Missing fields")
		return
	}

	if _, err := ic.service.Report(req.Type, req.Description, req.Location); err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, "Missing fields")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "Issue reported successfully")
}

// GET /api/issues/?department=&status=
func (ic *IssueController) List(c *gin.Context) {
	issues, err := ic.service.List(c.Query("department"), c.Query("status"))
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, "Invalid status")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}

// PATCH /api/issues/:id/resolve
func (ic *IssueController) Resolve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Issue not found")
		return
	}

	if err := ic.service.Resolve(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "Issue not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Issue marked as resolved")
}

// DELETE /api/issues/:id
func (ic *IssueController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Issue not found")
		return
	}

	if err := ic.service.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "Issue not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Issue deleted")
}
