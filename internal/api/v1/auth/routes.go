package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/neha-5456/kaagjee/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", middleware.AuthMiddleware(), Logout)
	}
}
