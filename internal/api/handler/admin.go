package handler

import (
	"errors"
	"io"
	"net/http"

	"hostelgo/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AdminListComplaints returns all complaints, newest first, optionally
// filtered by exact status ("all" and empty mean no filter).
func (h *Handler) AdminListComplaints(c *gin.Context) {
	p, _ := principalFrom(c)

	complaints, err := h.Complaints.List(p, c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

// AdminStats returns per-status complaint counts.
func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.Complaints.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// AdminGetComplaint returns one complaint together with its audit ledger,
// newest entries first.
func (h *Handler) AdminGetComplaint(c *gin.Context) {
	p, _ := principalFrom(c)

	found, updates, err := h.Complaints.Get(p, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"complaint": found, "updates": updates})
}

type statusUpdateRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"adminNotes"`
}

// AdminUpdateStatus transitions a complaint to the requested status.
func (h *Handler) AdminUpdateStatus(c *gin.Context) {
	p, _ := principalFrom(c)

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("Valid status is required"))
		return
	}

	updated, err := h.Complaints.Transition(p, c.Param("id"), models.Status(req.Status), req.AdminNotes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Complaint status updated successfully",
		"complaint": updated,
	})
}

type resolveRequest struct {
	AdminNotes string `json:"adminNotes"`
}

// AdminResolveComplaint marks a complaint resolved, recording the default
// resolution note when none is given.
func (h *Handler) AdminResolveComplaint(c *gin.Context) {
	p, _ := principalFrom(c)

	var req resolveRequest
	// An empty body is fine: resolve falls back to the default note.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	resolved, err := h.Complaints.Resolve(p, c.Param("id"), req.AdminNotes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Complaint marked as resolved",
		"complaint": resolved,
	})
}
