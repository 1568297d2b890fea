package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup) {
	userGroup := r.Group("/users")
	{
		userGroup.GET("", ListUsers)
	}
}
