package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"hostelgo/backend/internal/config"
	"hostelgo/backend/internal/models"
	"hostelgo/backend/internal/storage"

	"github.com/gin-gonic/gin"

	jwt "github.com/golang-jwt/jwt/v5"
)

// generateJWT генерує JWT для користувача
func (h *Handler) generateJWT(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(config.TokenTTL).Unix(),
		"iss":     "hostelgo-service", // Видавець
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}

// parseJWT validates a token string and returns the user id claim.
func (h *Handler) parseJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("missing user_id claim")
	}
	return userID, nil
}

type registerRequest struct {
	UserID     string `json:"userId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role" binding:"required"`
	RoomNumber string `json:"roomNumber"`
}

// Register creates a new user account. The role is chosen explicitly and
// validated against the fixed set; students must supply a room number.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("userId, name, valid email, password and role are required"))
		return
	}

	if len(req.Password) < config.MinPasswordLength {
		c.JSON(http.StatusBadRequest, errorBody("Password must be at least 6 characters"))
		return
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, errorBody("Valid role is required"))
		return
	}

	roomNumber := strings.TrimSpace(req.RoomNumber)
	if req.Role == models.RoleStudent && roomNumber == "" {
		c.JSON(http.StatusBadRequest, errorBody("Room number is required for students"))
		return
	}
	if req.Role == models.RoleAdmin {
		roomNumber = ""
	}

	exists, err := h.Storage.UserExists(req.Email, req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("Registration failed"))
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, errorBody("User with this email or User ID already exists"))
		return
	}

	user := &models.User{
		UserID:     strings.TrimSpace(req.UserID),
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
		Role:       req.Role,
		RoomNumber: roomNumber,
	}
	if err := user.SetPassword(req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("Registration failed"))
		return
	}

	if err := h.Storage.SaveUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("Registration failed"))
		return
	}

	token, err := h.generateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("Failed to create token"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserID   string `json:"userId" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Login authenticates a user. Email, password, user id and role must all
// match the stored account.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("email, password, userId and role are required"))
		return
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, errorBody("Valid role is required"))
		return
	}

	user, err := h.Storage.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, errorBody("Invalid credentials"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorBody("Login failed"))
		return
	}

	if !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, errorBody("Invalid credentials"))
		return
	}
	if user.Role != req.Role {
		c.JSON(http.StatusUnauthorized, errorBody("Invalid credentials for "+req.Role+" role"))
		return
	}
	if user.UserID != req.UserID {
		c.JSON(http.StatusUnauthorized, errorBody("User ID does not match"))
		return
	}

	token, err := h.generateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("Failed to create token"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Verify checks the bearer token and returns the account behind it.
func (h *Handler) Verify(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, errorBody("Token required"))
		return
	}

	userID, err := h.parseJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorBody("Invalid token"))
		return
	}

	user, err := h.Storage.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorBody("User not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  user,
	})
}
