package order

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/neha-5456/kaagjee/internal/models"
)

type CheckoutRequest struct {
	PaymentType   string `json:"payment_type" binding:"required,oneof=full half"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	Notes         string `json:"notes"`
}

type OrderItemResponse struct {
	ID              uint                   `json:"id"`
	ProductID       *uint                  `json:"product_id"`
	ProductTitle    string                 `json:"product_title"`
	ProductSlug     string                 `json:"product_slug"`
	UnitPrice       decimal.Decimal        `json:"unit_price"`
	SubmissionToken string                 `json:"submission_token"`
	FormData        map[string]interface{} `json:"form_data,omitempty"`
}

type PaymentSummaryResponse struct {
	PaymentID  string          `json:"payment_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	PaymentFor string          `json:"payment_for"`
	Status     string          `json:"status"`
	PaidAt     *time.Time      `json:"paid_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

type StatusHistoryResponse struct {
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  uint      `json:"changed_by"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type OrderResponse struct {
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	PaymentType string `json:"payment_type"`

	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`

	FirstPaymentAmount   decimal.Decimal `json:"first_payment_amount"`
	FirstPaymentDate     *time.Time      `json:"first_payment_date"`
	SecondPaymentAmount  decimal.Decimal `json:"second_payment_amount"`
	SecondPaymentDate    *time.Time      `json:"second_payment_date"`
	SecondPaymentDueDate *time.Time      `json:"second_payment_due_date"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	CustomerNotes string `json:"customer_notes,omitempty"`

	Items         []OrderItemResponse      `json:"items,omitempty"`
	Payments      []PaymentSummaryResponse `json:"payments,omitempty"`
	StatusHistory []StatusHistoryResponse  `json:"status_history,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	PaidAt      *time.Time `json:"paid_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func toOrderItemResponse(item *models.OrderItem) OrderItemResponse {
	resp := OrderItemResponse{
		ID:              item.ID,
		ProductID:       item.ProductID,
		ProductTitle:    item.ProductTitle,
		ProductSlug:     item.ProductSlug,
		UnitPrice:       item.UnitPrice,
		SubmissionToken: item.SubmissionToken,
	}
	if len(item.FormData) > 0 {
		var data map[string]interface{}
		if err := json.Unmarshal(item.FormData, &data); err == nil {
			resp.FormData = data
		}
	}
	return resp
}

// ToOrderResponse flattens an order with whatever associations are loaded.
// Listings preload nothing beyond items; the detail view carries payments
// and status history as well.
func ToOrderResponse(o *models.Order) OrderResponse {
	resp := OrderResponse{
		OrderNumber:          o.OrderNumber,
		Status:               string(o.Status),
		PaymentType:          string(o.PaymentType),
		TotalAmount:          o.TotalAmount,
		PaidAmount:           o.PaidAmount,
		PendingAmount:        o.PendingAmount,
		FirstPaymentAmount:   o.FirstPaymentAmount,
		FirstPaymentDate:     o.FirstPaymentDate,
		SecondPaymentAmount:  o.SecondPaymentAmount,
		SecondPaymentDate:    o.SecondPaymentDate,
		SecondPaymentDueDate: o.SecondPaymentDueDate,
		CustomerName:         o.CustomerName,
		CustomerEmail:        o.CustomerEmail,
		CustomerPhone:        o.CustomerPhone,
		CustomerNotes:        o.CustomerNotes,
		CreatedAt:            o.CreatedAt,
		PaidAt:               o.PaidAt,
		CompletedAt:          o.CompletedAt,
	}
	for i := range o.Items {
		resp.Items = append(resp.Items, toOrderItemResponse(&o.Items[i]))
	}
	for i := range o.Payments {
		p := &o.Payments[i]
		resp.Payments = append(resp.Payments, PaymentSummaryResponse{
			PaymentID:  p.PaymentID,
			Amount:     p.Amount,
			Currency:   p.Currency,
			PaymentFor: string(p.PaymentFor),
			Status:     string(p.Status),
			PaidAt:     p.PaidAt,
			CreatedAt:  p.CreatedAt,
		})
	}
	for i := range o.StatusHistory {
		h := &o.StatusHistory[i]
		resp.StatusHistory = append(resp.StatusHistory, StatusHistoryResponse{
			FromStatus: string(h.FromStatus),
			ToStatus:   string(h.ToStatus),
			ChangedBy:  h.ChangedBy,
			Notes:      h.Notes,
			CreatedAt:  h.CreatedAt,
		})
	}
	return resp
}
