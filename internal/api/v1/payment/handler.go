package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neha-5456/kaagjee/config"
	"github.com/neha-5456/kaagjee/internal/models"
	gw "github.com/neha-5456/kaagjee/internal/payment"
	"github.com/neha-5456/kaagjee/internal/services"
	"github.com/neha-5456/kaagjee/internal/utils"
)

// Initiate creates a gateway order and a payment attempt row, and returns
// the checkout payload for the frontend widget.
func Initiate(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var req InitiatePaymentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	paymentFor, err := models.ParsePaymentFor(req.PaymentFor)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	p, gatewayOrder, err := services.InitiatePayment(user.ID, req.OrderNumber, paymentFor)
	if err != nil {
		RespondError(c, err)
		return
	}

	cfg, _ := config.LoadConfig()
	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Payment initiated",
		NewCheckoutPayload(p, gatewayOrder, cfg.RazorpayKeyID, req.OrderNumber)))
}

// Verify settles a payment attempt after the gateway callback. A repeated
// verify for an already settled payment returns the same success response.
func Verify(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var req VerifyPaymentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	order, err := services.VerifyAndSettle(user.ID, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Payment verified", gin.H{
		"order_number":   order.OrderNumber,
		"status":         order.Status,
		"paid_amount":    order.PaidAmount,
		"pending_amount": order.PendingAmount,
	}))
}

// My lists the authenticated user's payment attempts, newest first.
func My(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	payments, err := services.MyPayments(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list payments"))
		return
	}

	responses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, ToPaymentResponse(&payments[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", responses))
}

// Get returns one of the user's payments by its public payment id.
func Get(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	p, err := services.GetPaymentByID(user.ID, c.Param("paymentID"))
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Payment not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch payment"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", ToPaymentResponse(p)))
}

// RespondError maps payment flow errors to HTTP statuses. The order
// handlers reuse it for the pay-pending endpoint.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Order not found"))
	case errors.Is(err, services.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Payment not found"))
	case errors.Is(err, services.ErrOrderClosed),
		errors.Is(err, services.ErrNoPendingAmount),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrSignatureVerification):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
	case errors.Is(err, gw.ErrGateway):
		c.JSON(http.StatusBadGateway, utils.NewErrorResponse(http.StatusBadGateway, "Payment gateway error"))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Payment processing failed"))
	}
}
