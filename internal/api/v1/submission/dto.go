package submission

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/neha-5456/kaagjee/internal/models"
)

type SubmitFormRequest struct {
	FormData map[string]interface{} `json:"form_data" binding:"required"`
}

type SubmissionResponse struct {
	Token             string                 `json:"token"`
	ProductID         uint                   `json:"product_id"`
	ProductTitle      string                 `json:"product_title,omitempty"`
	FormData          map[string]interface{} `json:"form_data"`
	PriceAtSubmission decimal.Decimal        `json:"price_at_submission"`
	Status            string                 `json:"status"`
	CreatedAt         time.Time              `json:"created_at"`
}

func toSubmissionResponse(s *models.FormSubmission) SubmissionResponse {
	resp := SubmissionResponse{
		Token:             s.Token,
		ProductID:         s.ProductID,
		ProductTitle:      s.Product.Title,
		PriceAtSubmission: s.PriceAtSubmission,
		Status:            string(s.Status),
		CreatedAt:         s.CreatedAt,
	}
	if len(s.FormData) > 0 {
		var data map[string]interface{}
		if err := json.Unmarshal(s.FormData, &data); err == nil {
			resp.FormData = data
		}
	}
	return resp
}
