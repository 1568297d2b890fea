package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type PaymentStatus string
type PaymentFor string

const (
	PaymentStatusCreated  PaymentStatus = "created"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusSuccess  PaymentStatus = "success"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"

	PaymentForFirst  PaymentFor = "first"
	PaymentForSecond PaymentFor = "second"
	PaymentForFull   PaymentFor = "full"
)

func ParsePaymentFor(s string) (PaymentFor, error) {
	switch PaymentFor(strings.ToLower(s)) {
	case PaymentForFirst:
		return PaymentForFirst, nil
	case PaymentForSecond:
		return PaymentForSecond, nil
	case PaymentForFull:
		return PaymentForFull, nil
	default:
		return "", errors.New("invalid payment_for value")
	}
}

// Payment is one gateway transaction attempt against an order. An order
// accumulates one row per attempt (first leg, second leg, retries); only
// rows that reach status success count towards the order's PaidAmount.
type Payment struct {
	ID        uint   `gorm:"primarykey"`
	PaymentID string `gorm:"uniqueIndex;type:varchar(50);not null"`
	OrderID   uint   `gorm:"index;not null"`
	Order     Order
	UserID    uint `gorm:"index;not null"`

	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency   string          `gorm:"type:varchar(3);default:'INR'"`
	PaymentFor PaymentFor      `gorm:"type:varchar(10);default:'full'"`
	Status     PaymentStatus   `gorm:"type:varchar(20);default:'created';index"`

	RazorpayOrderID   string         `gorm:"type:varchar(100);index"`
	RazorpayPaymentID string         `gorm:"type:varchar(100)"`
	RazorpaySignature string         `gorm:"type:varchar(200)"`
	GatewayResponse   datatypes.JSON `gorm:"type:json"`
	ErrorMessage      string         `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	PaidAt    *time.Time
}

// NewPaymentID builds a payment identifier like PAY4F2A91C03B7D.
func NewPaymentID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:12])
	return fmt.Sprintf("PAY%s", suffix)
}
