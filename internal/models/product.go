package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ProductStatus string

const (
	ProductStatusDraft      ProductStatus = "draft"
	ProductStatusActive     ProductStatus = "active"
	ProductStatusInactive   ProductStatus = "inactive"
	ProductStatusComingSoon ProductStatus = "coming_soon"
)

// Product is a service offering with a dynamic application form.
// Pricing supports a 50% advance: when AllowHalfPayment is set and no
// explicit HalfPrice is configured, NormalizePricing fills in full/2.
type Product struct {
	ID               uint   `gorm:"primarykey"`
	Title            string `gorm:"type:varchar(300);not null"`
	Slug             string `gorm:"uniqueIndex;type:varchar(350);not null"`
	ShortDescription string `gorm:"type:varchar(500)"`
	Description      string `gorm:"type:text"`
	Category         string `gorm:"type:varchar(100);index"`

	FullPrice        decimal.Decimal     `gorm:"type:decimal(10,2);not null"`
	HalfPrice        decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	AllowHalfPayment bool                `gorm:"default:true"`

	FormTitle  string         `gorm:"type:varchar(200);default:'Application Form'"`
	FormSchema datatypes.JSON `gorm:"type:json"` // list of FormField descriptors

	Status      ProductStatus `gorm:"type:varchar(20);default:'draft';index"`
	OrdersCount uint          `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FormField is one descriptor in a product's form schema. The backend only
// cares about Name and Required; Label and Type are passed through for the
// frontend renderer.
type FormField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// NormalizePricing fills the half price from the full price when a product
// allows half payment but no explicit half price is configured. Callers
// invoke it before persisting; it is not a save hook.
func (p *Product) NormalizePricing() {
	if p.AllowHalfPayment && !p.HalfPrice.Valid && !p.FullPrice.IsZero() {
		p.HalfPrice = decimal.NewNullDecimal(p.FullPrice.Div(decimal.NewFromInt(2)).Round(2))
	}
}
