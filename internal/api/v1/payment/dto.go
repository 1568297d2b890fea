package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/neha-5456/kaagjee/internal/models"
	gw "github.com/neha-5456/kaagjee/internal/payment"
)

type InitiatePaymentRequest struct {
	OrderNumber string `json:"order_number" binding:"required"`
	PaymentFor  string `json:"payment_for" binding:"required,oneof=first second full"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// CheckoutPayload is everything the frontend needs to open the gateway's
// checkout widget: the gateway order id, the amount in minor units and the
// public key id.
type CheckoutPayload struct {
	PaymentID      string `json:"payment_id"`
	GatewayOrderID string `json:"gateway_order_id"`
	AmountMinor    int64  `json:"amount"`
	Currency       string `json:"currency"`
	KeyID          string `json:"key_id"`
	OrderNumber    string `json:"order_number"`
}

func NewCheckoutPayload(p *models.Payment, order *gw.GatewayOrder, keyID, orderNumber string) CheckoutPayload {
	return CheckoutPayload{
		PaymentID:      p.PaymentID,
		GatewayOrderID: order.ID,
		AmountMinor:    order.Amount,
		Currency:       order.Currency,
		KeyID:          keyID,
		OrderNumber:    orderNumber,
	}
}

type PaymentResponse struct {
	PaymentID         string          `json:"payment_id"`
	OrderNumber       string          `json:"order_number,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	PaymentFor        string          `json:"payment_for"`
	Status            string          `json:"status"`
	RazorpayOrderID   string          `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string          `json:"razorpay_payment_id,omitempty"`
	ErrorMessage      string          `json:"error_message,omitempty"`
	PaidAt            *time.Time      `json:"paid_at"`
	CreatedAt         time.Time       `json:"created_at"`
}

func ToPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:         p.PaymentID,
		OrderNumber:       p.Order.OrderNumber,
		Amount:            p.Amount,
		Currency:          p.Currency,
		PaymentFor:        string(p.PaymentFor),
		Status:            string(p.Status),
		RazorpayOrderID:   p.RazorpayOrderID,
		RazorpayPaymentID: p.RazorpayPaymentID,
		ErrorMessage:      p.ErrorMessage,
		PaidAt:            p.PaidAt,
		CreatedAt:         p.CreatedAt,
	}
}
