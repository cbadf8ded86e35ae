package handler

import (
	"errors"
	"net/http"

	"hostelgo/backend/internal/complaint"
	"hostelgo/backend/internal/notifyhub"
	"hostelgo/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler holds the hub, the storage and the complaint service used by the
// HTTP routes.
type Handler struct {
	Hub        *notifyhub.ManagerService
	Storage    storage.Storage
	Complaints *complaint.Service
	jwtSecret  []byte
}

func NewHandler(hub *notifyhub.ManagerService, s storage.Storage, svc *complaint.Service, jwtSecret string) *Handler {
	return &Handler{
		Hub:        hub,
		Storage:    s,
		Complaints: svc,
		jwtSecret:  []byte(jwtSecret),
	}
}

// errorBody builds the {"error": {"message": ...}} envelope every failure
// response uses.
func errorBody(message string) gin.H {
	return gin.H{"error": gin.H{"message": message}}
}

// respondServiceError maps a complaint service error onto an HTTP status.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *complaint.ValidationError
	var authErr *complaint.AuthorizationError
	var notFoundErr *complaint.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, errorBody(validationErr.Message))
	case errors.As(err, &authErr):
		c.JSON(http.StatusForbidden, errorBody(authErr.Message))
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, errorBody(notFoundErr.Message))
	default:
		// Persistence failures: generic message, details stay in the logs.
		c.JSON(http.StatusInternalServerError, errorBody("Internal server error"))
	}
}
