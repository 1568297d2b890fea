package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/neha-5456/kaagjee/internal/models"
)

// CurrentUser returns the user placed in the context by the auth middleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	userRaw, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := userRaw.(models.User)
	return user, ok
}
