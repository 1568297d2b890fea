package cart

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/neha-5456/kaagjee/internal/models"
)

type AddToCartRequest struct {
	SubmissionToken string `json:"submission_token" binding:"required"`
}

type CartItemResponse struct {
	ID              uint            `json:"id"`
	ProductID       uint            `json:"product_id"`
	ProductTitle    string          `json:"product_title"`
	ProductSlug     string          `json:"product_slug"`
	SubmissionToken string          `json:"submission_token"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	AddedAt         time.Time       `json:"added_at"`
}

type CartResponse struct {
	Items       []CartItemResponse `json:"items"`
	TotalItems  int                `json:"total_items"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
}

func toCartItemResponse(item *models.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:              item.ID,
		ProductID:       item.ProductID,
		ProductTitle:    item.Product.Title,
		ProductSlug:     item.Product.Slug,
		SubmissionToken: item.Submission.Token,
		UnitPrice:       item.UnitPrice,
		AddedAt:         item.AddedAt,
	}
}

func toCartResponse(cart *models.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for i := range cart.Items {
		items = append(items, toCartItemResponse(&cart.Items[i]))
	}
	return CartResponse{
		Items:       items,
		TotalItems:  cart.TotalItems(),
		TotalAmount: cart.TotalAmount(),
	}
}
