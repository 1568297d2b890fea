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

type OrderStatus string
type PaymentType string

const (
	OrderStatusPending     OrderStatus = "pending"
	OrderStatusPartialPaid OrderStatus = "partial_paid"
	OrderStatusPaid        OrderStatus = "paid"
	OrderStatusProcessing  OrderStatus = "processing"
	OrderStatusCompleted   OrderStatus = "completed"
	OrderStatusCancelled   OrderStatus = "cancelled"
	OrderStatusRefunded    OrderStatus = "refunded"

	PaymentTypeFull PaymentType = "full"
	PaymentTypeHalf PaymentType = "half"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// ParseOrderStatus maps a free-form string to the closed status set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusPartialPaid:
		return OrderStatusPartialPaid, nil
	case OrderStatusPaid:
		return OrderStatusPaid, nil
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusCompleted:
		return OrderStatusCompleted, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	case OrderStatusRefunded:
		return OrderStatusRefunded, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(strings.ToLower(s)) {
	case PaymentTypeFull:
		return PaymentTypeFull, nil
	case PaymentTypeHalf:
		return PaymentTypeHalf, nil
	default:
		return "", errors.New("invalid payment type")
	}
}

// Order is the authoritative monetary record. PaidAmount is only ever
// credited by the payment settle path; PendingAmount is derived, never
// mutated independently.
type Order struct {
	ID          uint   `gorm:"primarykey"`
	OrderNumber string `gorm:"uniqueIndex;type:varchar(50);not null"`
	UserID      uint   `gorm:"index;not null"`
	User        User

	Status      OrderStatus `gorm:"type:varchar(20);default:'pending';index"`
	PaymentType PaymentType `gorm:"type:varchar(10);default:'full'"`

	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaidAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	PendingAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	FirstPaymentAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	FirstPaymentDate     *time.Time
	SecondPaymentAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	SecondPaymentDate    *time.Time
	SecondPaymentDueDate *time.Time

	// Customer snapshot, immune to later profile edits
	CustomerName  string `gorm:"type:varchar(200)"`
	CustomerEmail string `gorm:"type:varchar(254)"`
	CustomerPhone string `gorm:"type:varchar(20)"`
	CustomerNotes string `gorm:"type:text"`

	Items         []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payments      []Payment            `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusHistory []OrderStatusHistory `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt   time.Time
	UpdatedAt   time.Time
	PaidAt      *time.Time
	CompletedAt *time.Time
}

// OrderItem is an immutable snapshot of a cart item at checkout time.
// ProductID is nullable so the line survives product deletion.
type OrderItem struct {
	ID        uint  `gorm:"primarykey"`
	OrderID   uint  `gorm:"index;not null"`
	ProductID *uint `gorm:"index"`

	ProductTitle    string          `gorm:"type:varchar(300);not null"`
	ProductSlug     string          `gorm:"type:varchar(350)"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SubmissionToken string          `gorm:"type:varchar(32);index"`

	FormData           datatypes.JSON `gorm:"type:json"`
	FormSchemaSnapshot datatypes.JSON `gorm:"type:json"`

	CreatedAt time.Time
}

type OrderStatusHistory struct {
	ID         uint        `gorm:"primarykey"`
	OrderID    uint        `gorm:"index;not null"`
	FromStatus OrderStatus `gorm:"type:varchar(20)"`
	ToStatus   OrderStatus `gorm:"type:varchar(20)"`
	ChangedBy  uint        `gorm:"index"` // user id of the actor, 0 for system
	Notes      string      `gorm:"type:text"`
	CreatedAt  time.Time
}

// NewOrderNumber builds an order number like CS20250130A1B2C3.
func NewOrderNumber(prefix string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("%s%s%s", prefix, now.Format("20060102"), suffix)
}

// RecomputeDerived recalculates PendingAmount and applies the automatic
// amount-based status rule. The rule only upgrades pending/partial_paid
// orders; a status set by an administrator (processing, completed,
// cancelled, refunded) is never overridden here.
func (o *Order) RecomputeDerived(now time.Time) {
	o.PendingAmount = o.TotalAmount.Sub(o.PaidAmount)

	switch o.Status {
	case OrderStatusPending, OrderStatusPartialPaid:
	default:
		return
	}

	if o.PaidAmount.GreaterThanOrEqual(o.TotalAmount) && o.TotalAmount.GreaterThan(decimal.Zero) {
		o.Status = OrderStatusPaid
		if o.PaidAt == nil {
			paidAt := now
			o.PaidAt = &paidAt
		}
	} else if o.PaidAmount.GreaterThan(decimal.Zero) && o.Status == OrderStatusPending {
		o.Status = OrderStatusPartialPaid
	}
}

// IsClosed reports whether the order can no longer collect money.
func (o *Order) IsClosed() bool {
	return o.Status == OrderStatusCancelled || o.Status == OrderStatusRefunded
}
