package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neha-5456/kaagjee/config"
	apipayment "github.com/neha-5456/kaagjee/internal/api/v1/payment"
	"github.com/neha-5456/kaagjee/internal/models"
	"github.com/neha-5456/kaagjee/internal/services"
	"github.com/neha-5456/kaagjee/internal/utils"
)

// Checkout converts the user's cart into an order.
func Checkout(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var req CheckoutRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	paymentType, err := models.ParsePaymentType(req.PaymentType)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	order, err := services.Checkout(services.CheckoutRequest{
		UserID:        user.ID,
		PaymentType:   paymentType,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Cart is empty"))
		case errors.Is(err, services.ErrHalfPaymentNotAllowed):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create order"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Order created successfully", ToOrderResponse(order)))
}

// My lists the authenticated user's orders, newest first.
func My(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	orders, err := services.MyOrders(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list orders"))
		return
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", responses))
}

// PendingPayments lists the user's orders that still owe money.
func PendingPayments(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	orders, err := services.PendingPaymentOrders(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list orders"))
		return
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", responses))
}

// Get returns one of the user's orders with items, payments and history.
func Get(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	order, err := services.GetOrderByNumber(user.ID, c.Param("orderNumber"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch order"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", ToOrderResponse(order)))
}

// PayPending initiates the second payment leg for a partially paid order.
func PayPending(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	orderNumber := c.Param("orderNumber")
	p, gatewayOrder, err := services.PayPending(user.ID, orderNumber)
	if err != nil {
		apipayment.RespondError(c, err)
		return
	}

	cfg, _ := config.LoadConfig()
	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Payment initiated",
		apipayment.NewCheckoutPayload(p, gatewayOrder, cfg.RazorpayKeyID, orderNumber)))
}
