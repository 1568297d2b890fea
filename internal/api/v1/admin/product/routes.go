package product

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup) {
	h := NewHandler()

	productGroup := r.Group("/products")
	{
		productGroup.GET("", h.ListProducts)
		productGroup.POST("", h.CreateProduct)
		productGroup.PATCH("/:id", h.UpdateProduct)
	}
}
