package product

import (
	"github.com/shopspring/decimal"

	"github.com/neha-5456/kaagjee/internal/models"
)

type CreateProductRequest struct {
	Title            string             `json:"title" binding:"required"`
	Slug             string             `json:"slug" binding:"required"`
	ShortDescription string             `json:"short_description"`
	Description      string             `json:"description"`
	Category         string             `json:"category"`
	FullPrice        decimal.Decimal    `json:"full_price" binding:"required"`
	HalfPrice        *decimal.Decimal   `json:"half_price"`
	AllowHalfPayment *bool              `json:"allow_half_payment"`
	FormTitle        string             `json:"form_title"`
	FormSchema       []models.FormField `json:"form_schema"`
	Status           string             `json:"status" binding:"omitempty,oneof=draft active inactive coming_soon"`
}

// UpdateProductRequest carries partial updates; nil fields are left alone.
type UpdateProductRequest struct {
	Title            *string             `json:"title"`
	ShortDescription *string             `json:"short_description"`
	Description      *string             `json:"description"`
	Category         *string             `json:"category"`
	FullPrice        *decimal.Decimal    `json:"full_price"`
	HalfPrice        *decimal.Decimal    `json:"half_price"`
	AllowHalfPayment *bool               `json:"allow_half_payment"`
	FormTitle        *string             `json:"form_title"`
	FormSchema       *[]models.FormField `json:"form_schema"`
	Status           *string             `json:"status"`
}

type ProductListItem struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Category    string `json:"category"`
	FullPrice   string `json:"full_price"`
	Status      string `json:"status"`
	OrdersCount uint   `json:"orders_count"`
	CreatedAt   string `json:"created_at"`
}

func toProductListItem(p *models.Product) ProductListItem {
	return ProductListItem{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Category:    p.Category,
		FullPrice:   p.FullPrice.StringFixed(2),
		Status:      string(p.Status),
		OrdersCount: p.OrdersCount,
		CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
