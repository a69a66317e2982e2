package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ALjabriOmars/SCSP/pkg/resp"
	"github.com/ALjabriOmars/SCSP/services"

	"github.com/gin-gonic/gin"
)

type SubmitBidRequest struct {
	TaskID       int    `json:"taskId"`
	TaskName     string `json:"taskName"`
	ProviderName string `json:"providerName"`
	BidAmount    string `json:"bidAmount"`
	Department   string `json:"department"`
}

type UpdateBidStatusRequest struct {
	Status        string `json:"status"`
	Reason        string `json:"reason"`
	CompletedDate string `json:"completed_date"`
}

type BidController struct {
	service *services.BidService
}

func NewBidController(service *services.BidService) *BidController {
	return &BidController{service: service}
}

// GET /api/bids?department=&provider=
func (bc *BidController) List(c *gin.Context) {
	bids, err := bc.service.List(c.Query("department"), c.Query("provider"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, bids)
}

// POST /api/bids
func (bc *BidController) Submit(c *gin.Context) {
	var req SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Missing fields")
		return
	}

	if _, err := bc.service.Submit(req.TaskID, req.TaskName, req.ProviderName, req.BidAmount, req.Department); err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, "Missing fields")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "Bid submitted successfully")
}

// PATCH /api/bids/:id/status
func (bc *BidController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Bid not found")
		return
	}

	var req UpdateBidStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid body")
		return
	}

	if err := bc.service.UpdateStatus(uint(id), req.Status, req.Reason, req.CompletedDate); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "Bid not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Bid status updated")
}
