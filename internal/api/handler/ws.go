package handler

import (
	"net/http"
	"time"

	"hostelgo/backend/internal/models"
	"hostelgo/backend/internal/notifyhub"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Дозволяє з'єднання з будь-якого домену. У продакшені налаштувати!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket оновлює HTTP-з'єднання до WebSocket та реєструє клієнта в хабі.
// Runs behind Authenticate, so the principal is already resolved.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("Authorization token missing"))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody("Failed to upgrade connection"))
		return
	}

	client := &notifyhub.WebSocketClient{
		Hub:    h.Hub,
		UserID: p.ID,
		Role:   p.Role,
		Conn:   conn,
		Send:   make(chan models.Event, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}

// Health is a liveness endpoint.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Hostel Complaint System API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
