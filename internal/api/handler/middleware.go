package handler

import (
	"net/http"
	"strings"

	"hostelgo/backend/internal/models"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// bearerToken extracts the token from the Authorization header, falling back
// to the "token" query parameter (browsers cannot set headers on websocket
// upgrades).
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// Authenticate resolves the request principal from the bearer token and
// stores it in the request context.
func (h *Handler) Authenticate(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("Authorization token missing"))
		return
	}

	userID, err := h.parseJWT(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("Invalid token or expired"))
		return
	}

	user, err := h.Storage.GetUserByID(userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("User not found"))
		return
	}

	c.Set(principalKey, models.PrincipalFromUser(user))
	c.Next()
}

// RequireRole aborts with 403 unless the authenticated principal holds the
// given role.
func (h *Handler) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principalFrom(c)
		if !ok || p.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, errorBody("Access denied"))
			return
		}
		c.Next()
	}
}

func principalFrom(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}
