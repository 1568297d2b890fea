package order

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup) {
	h := NewHandler()

	orderGroup := r.Group("/orders")
	{
		orderGroup.GET("", h.ListOrders)
		orderGroup.GET("/:orderNumber", h.GetOrder)
		orderGroup.PATCH("/:orderNumber/status", h.UpdateStatus)
	}
}
