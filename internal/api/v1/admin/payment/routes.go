package payment

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup) {
	h := NewHandler()

	paymentGroup := r.Group("/payments")
	{
		paymentGroup.GET("", h.ListPayments)
	}
}
