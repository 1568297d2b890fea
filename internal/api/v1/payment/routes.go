package payment

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	payments := router.Group("/payments")
	{
		payments.POST("/initiate", Initiate)
		payments.POST("/verify", Verify)
		payments.GET("/my", My)
		payments.GET("/:paymentID", Get)
	}
}
