package order

import (
	"github.com/gin-gonic/gin"

	"github.com/neha-5456/kaagjee/internal/api/v1/cart"
	"github.com/neha-5456/kaagjee/internal/api/v1/submission"
)

// RegisterRoutes mounts the orders group. Submissions and the cart live
// under the same prefix to match the public URL layout.
func RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		submission.RegisterRoutes(orders)
		cart.RegisterRoutes(orders)

		orders.POST("/checkout", Checkout)
		orders.GET("/my", My)
		orders.GET("/pending-payments", PendingPayments)
		orders.GET("/:orderNumber", Get)
		orders.POST("/:orderNumber/pay-pending", PayPending)
	}
}
