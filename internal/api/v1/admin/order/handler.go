package order

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apiorder "github.com/neha-5456/kaagjee/internal/api/v1/order"
	"github.com/neha-5456/kaagjee/internal/models"
	"github.com/neha-5456/kaagjee/internal/services"
	"github.com/neha-5456/kaagjee/internal/utils"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListOrders returns all orders with optional filters and pagination.
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	filter := services.OrderFilter{
		Page:  page,
		Limit: limit,
	}

	if userIDStr, exists := c.GetQuery("user_id"); exists {
		userID, _ := strconv.Atoi(userIDStr)
		uid := uint(userID)
		filter.UserID = &uid
	}
	if statusStr, exists := c.GetQuery("status"); exists {
		status, err := models.ParseOrderStatus(statusStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}
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
	if minAmountStr, exists := c.GetQuery("min_amount"); exists {
		if minAmount, err := decimal.NewFromString(minAmountStr); err == nil {
			filter.MinAmount = &minAmount
		}
	}
	if maxAmountStr, exists := c.GetQuery("max_amount"); exists {
		if maxAmount, err := decimal.NewFromString(maxAmountStr); err == nil {
			filter.MaxAmount = &maxAmount
		}
	}

	orders, total, err := services.FindOrders(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list orders"))
		return
	}

	items := make([]OrderListItem, 0, len(orders))
	for i := range orders {
		items = append(items, toOrderListItem(&orders[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", gin.H{
		"orders": items,
		"total":  total,
		"page":   page,
		"limit":  limit,
	}))
}

// GetOrder returns the full order detail for any user's order.
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := services.GetOrderByNumber(0, c.Param("orderNumber"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch order"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", apiorder.ToOrderResponse(order)))
}

// UpdateStatus transitions an order to an explicit status and records the
// change in the order's status history.
func (h *Handler) UpdateStatus(c *gin.Context) {
	admin, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var req UpdateStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	order, err := services.UpdateOrderStatus(c.Param("orderNumber"), req.Status, admin.ID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Order not found"))
		case errors.Is(err, models.ErrInvalidOrderStatus):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update order status"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Order status updated", apiorder.ToOrderResponse(order)))
}
