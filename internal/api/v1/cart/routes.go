package cart

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the cart endpoints under the orders group.
func RegisterRoutes(orders *gin.RouterGroup) {
	cartGroup := orders.Group("/cart")
	{
		cartGroup.GET("", Get)
		cartGroup.GET("/count", Count)
		cartGroup.POST("/add", Add)
		cartGroup.DELETE("/items/:itemID", Remove)
		cartGroup.DELETE("/clear", Clear)
	}
}
