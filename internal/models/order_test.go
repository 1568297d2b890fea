package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2025, 1, 30, 12, 0, 0, 0, time.UTC)
	number := NewOrderNumber("CS", now)

	assert.Regexp(t, regexp.MustCompile(`^CS20250130[0-9A-F]{6}$`), number)

	// Suffixes are random so two numbers from the same instant differ.
	assert.NotEqual(t, number, NewOrderNumber("CS", now))
}

func TestNewPaymentID(t *testing.T) {
	id := NewPaymentID()
	assert.Regexp(t, regexp.MustCompile(`^PAY[0-9A-F]{12}$`), id)
	assert.NotEqual(t, id, NewPaymentID())
}

func TestRecomputeDerived(t *testing.T) {
	now := time.Now()

	t.Run("partial payment", func(t *testing.T) {
		o := Order{
			Status:      OrderStatusPending,
			TotalAmount: decimal.RequireFromString("100.00"),
			PaidAmount:  decimal.RequireFromString("50.00"),
		}
		o.RecomputeDerived(now)
		assert.Equal(t, OrderStatusPartialPaid, o.Status)
		assert.True(t, o.PendingAmount.Equal(decimal.RequireFromString("50.00")))
		assert.Nil(t, o.PaidAt)
	})

	t.Run("full payment", func(t *testing.T) {
		o := Order{
			Status:      OrderStatusPartialPaid,
			TotalAmount: decimal.RequireFromString("100.00"),
			PaidAmount:  decimal.RequireFromString("100.00"),
		}
		o.RecomputeDerived(now)
		assert.Equal(t, OrderStatusPaid, o.Status)
		assert.True(t, o.PendingAmount.IsZero())
		assert.NotNil(t, o.PaidAt)
	})

	t.Run("admin status is not overridden", func(t *testing.T) {
		o := Order{
			Status:      OrderStatusProcessing,
			TotalAmount: decimal.RequireFromString("100.00"),
			PaidAmount:  decimal.RequireFromString("100.00"),
		}
		o.RecomputeDerived(now)
		assert.Equal(t, OrderStatusProcessing, o.Status)
		assert.True(t, o.PendingAmount.IsZero())
	})

	t.Run("no payment", func(t *testing.T) {
		o := Order{
			Status:      OrderStatusPending,
			TotalAmount: decimal.RequireFromString("100.00"),
			PaidAmount:  decimal.Zero,
		}
		o.RecomputeDerived(now)
		assert.Equal(t, OrderStatusPending, o.Status)
		assert.True(t, o.PendingAmount.Equal(o.TotalAmount))
	})
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("Partial_Paid")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusPartialPaid, status)

	_, err = ParseOrderStatus("shipped")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestIsClosed(t *testing.T) {
	assert.True(t, (&Order{Status: OrderStatusCancelled}).IsClosed())
	assert.True(t, (&Order{Status: OrderStatusRefunded}).IsClosed())
	assert.False(t, (&Order{Status: OrderStatusPaid}).IsClosed())
	assert.False(t, (&Order{Status: OrderStatusPending}).IsClosed())
}
