package payment

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/neha-5456/kaagjee/internal/models"
	"github.com/neha-5456/kaagjee/internal/services"
	"github.com/neha-5456/kaagjee/internal/utils"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListPayments returns all payment attempts with optional filters. Failed
// attempts are included so the listing doubles as an audit trail.
func (h *Handler) ListPayments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	filter := services.PaymentRecordFilter{
		Page:  page,
		Limit: limit,
	}

	if userIDStr, exists := c.GetQuery("user_id"); exists {
		userID, _ := strconv.Atoi(userIDStr)
		uid := uint(userID)
		filter.UserID = &uid
	}
	if orderIDStr, exists := c.GetQuery("order_id"); exists {
		orderID, _ := strconv.Atoi(orderIDStr)
		oid := uint(orderID)
		filter.OrderID = &oid
	}
	if statusStr, exists := c.GetQuery("status"); exists {
		status := models.PaymentStatus(statusStr)
		filter.Status = &status
	}
	if startTimeStr, exists := c.GetQuery("start_time"); exists {
		if startTime, err := time.Parse(time.RFC3339, startTimeStr); err == nil {
			filter.StartTime = &startTime
		}
	}
	if endTimeStr, exists := c.GetQuery("end_time"); exists {
		if endTime, err := time.Parse(time.RFC3339, endTimeStr); err == nil {
			filter.EndTime = &endTime
		}
	}

	payments, total, err := services.FindPayments(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list payments"))
		return
	}

	items := make([]PaymentListItem, 0, len(payments))
	for i := range payments {
		items = append(items, toPaymentListItem(&payments[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", gin.H{
		"payments": items,
		"total":    total,
		"page":     page,
		"limit":    limit,
	}))
}
