package handler

import (
	"net/http"

	"hostelgo/backend/internal/complaint"

	"github.com/gin-gonic/gin"
)

// MyComplaints returns the authenticated student's complaints, newest first.
func (h *Handler) MyComplaints(c *gin.Context) {
	p, _ := principalFrom(c)

	complaints, err := h.Complaints.List(p, "")
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

// CreateComplaint submits a new complaint for the authenticated student.
func (h *Handler) CreateComplaint(c *gin.Context) {
	p, _ := principalFrom(c)

	var req complaint.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	created, err := h.Complaints.Create(p, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Complaint submitted successfully",
		"complaint": created,
	})
}

// GetComplaint returns one complaint. Students can only read their own.
func (h *Handler) GetComplaint(c *gin.Context) {
	p, _ := principalFrom(c)

	found, _, err := h.Complaints.Get(p, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"complaint": found})
}
