package payment

import "github.com/neha-5456/kaagjee/internal/models"

// PaymentListItem is the flat row for the admin audit listing.
type PaymentListItem struct {
	PaymentID         string `json:"payment_id"`
	OrderNumber       string `json:"order_number"`
	UserID            uint   `json:"user_id"`
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	PaymentFor        string `json:"payment_for"`
	Status            string `json:"status"`
	RazorpayOrderID   string `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string `json:"razorpay_payment_id,omitempty"`
	ErrorMessage      string `json:"error_message,omitempty"`
	CreatedAt         string `json:"created_at"`
}

func toPaymentListItem(p *models.Payment) PaymentListItem {
	return PaymentListItem{
		PaymentID:         p.PaymentID,
		OrderNumber:       p.Order.OrderNumber,
		UserID:            p.UserID,
		Amount:            p.Amount.StringFixed(2),
		Currency:          p.Currency,
		PaymentFor:        string(p.PaymentFor),
		Status:            string(p.Status),
		RazorpayOrderID:   p.RazorpayOrderID,
		RazorpayPaymentID: p.RazorpayPaymentID,
		ErrorMessage:      p.ErrorMessage,
		CreatedAt:         p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
