package product

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/neha-5456/kaagjee/internal/models"
)

type ProductResponse struct {
	ID               uint               `json:"id"`
	Title            string             `json:"title"`
	Slug             string             `json:"slug"`
	ShortDescription string             `json:"short_description"`
	Description      string             `json:"description,omitempty"`
	Category         string             `json:"category"`
	FullPrice        decimal.Decimal    `json:"full_price"`
	HalfPrice        *decimal.Decimal   `json:"half_price"`
	AllowHalfPayment bool               `json:"allow_half_payment"`
	FormTitle        string             `json:"form_title"`
	FormSchema       []models.FormField `json:"form_schema,omitempty"`
	Status           string             `json:"status"`
}

func toProductResponse(p *models.Product, includeSchema bool) ProductResponse {
	resp := ProductResponse{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		Category:         p.Category,
		FullPrice:        p.FullPrice,
		AllowHalfPayment: p.AllowHalfPayment,
		FormTitle:        p.FormTitle,
		Status:           string(p.Status),
	}
	if p.HalfPrice.Valid {
		half := p.HalfPrice.Decimal
		resp.HalfPrice = &half
	}
	if includeSchema && len(p.FormSchema) > 0 {
		var fields []models.FormField
		if err := json.Unmarshal(p.FormSchema, &fields); err == nil {
			resp.FormSchema = fields
		}
	}
	return resp
}
