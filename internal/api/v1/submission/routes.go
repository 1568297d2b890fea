package submission

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the submission endpoints under the orders group.
func RegisterRoutes(orders *gin.RouterGroup) {
	orders.POST("/submit-form/:idOrSlug", SubmitForm)
	orders.GET("/my-submissions", MySubmissions)
	orders.GET("/submissions/:token", Get)
}
