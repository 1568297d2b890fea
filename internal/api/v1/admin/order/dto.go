package order

import "github.com/neha-5456/kaagjee/internal/models"

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// OrderListItem is the flat row for admin listings.
type OrderListItem struct {
	OrderNumber   string `json:"order_number"`
	UserID        uint   `json:"user_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Status        string `json:"status"`
	PaymentType   string `json:"payment_type"`
	TotalAmount   string `json:"total_amount"`
	PaidAmount    string `json:"paid_amount"`
	PendingAmount string `json:"pending_amount"`
	ItemCount     int    `json:"item_count"`
	CreatedAt     string `json:"created_at"`
}

func toOrderListItem(o *models.Order) OrderListItem {
	return OrderListItem{
		OrderNumber:   o.OrderNumber,
		UserID:        o.UserID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Status:        string(o.Status),
		PaymentType:   string(o.PaymentType),
		TotalAmount:   o.TotalAmount.StringFixed(2),
		PaidAmount:    o.PaidAmount.StringFixed(2),
		PendingAmount: o.PendingAmount.StringFixed(2),
		ItemCount:     len(o.Items),
		CreatedAt:     o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
