package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        uint       `gorm:"primarykey"`
	UserID    uint       `gorm:"uniqueIndex;not null"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem links a cart to a product through exactly one form submission.
// The unique index on SubmissionID enforces that a submission sits in at
// most one cart item at a time.
type CartItem struct {
	ID           uint `gorm:"primarykey"`
	CartID       uint `gorm:"index;not null"`
	ProductID    uint `gorm:"not null"`
	Product      Product
	SubmissionID uint `gorm:"uniqueIndex;not null"`
	Submission   FormSubmission

	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	AddedAt   time.Time
}

// TotalItems and TotalAmount are always computed from the loaded items,
// never stored, so they cannot go stale.
func (c *Cart) TotalItems() int {
	return len(c.Items)
}

func (c *Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.UnitPrice)
	}
	return total
}
