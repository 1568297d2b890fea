package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePricing(t *testing.T) {
	p := Product{
		FullPrice:        decimal.RequireFromString("999.99"),
		AllowHalfPayment: true,
	}
	p.NormalizePricing()
	assert.True(t, p.HalfPrice.Valid)
	assert.True(t, p.HalfPrice.Decimal.Equal(decimal.RequireFromString("500.00")))

	// Explicit value survives.
	q := Product{
		FullPrice:        decimal.RequireFromString("1000.00"),
		HalfPrice:        decimal.NewNullDecimal(decimal.RequireFromString("400.00")),
		AllowHalfPayment: true,
	}
	q.NormalizePricing()
	assert.True(t, q.HalfPrice.Decimal.Equal(decimal.RequireFromString("400.00")))

	// No half payment, no half price.
	r := Product{
		FullPrice:        decimal.RequireFromString("1000.00"),
		AllowHalfPayment: false,
	}
	r.NormalizePricing()
	assert.False(t, r.HalfPrice.Valid)
}

func TestSubmissionTransitions(t *testing.T) {
	assert.True(t, SubmissionStatusSubmitted.CanTransitionTo(SubmissionStatusInCart))
	assert.True(t, SubmissionStatusInCart.CanTransitionTo(SubmissionStatusSubmitted))
	assert.True(t, SubmissionStatusInCart.CanTransitionTo(SubmissionStatusOrdered))
	assert.False(t, SubmissionStatusSubmitted.CanTransitionTo(SubmissionStatusOrdered))

	// Terminal states have no exits.
	assert.False(t, SubmissionStatusCompleted.CanTransitionTo(SubmissionStatusProcessing))
	assert.False(t, SubmissionStatusCancelled.CanTransitionTo(SubmissionStatusSubmitted))
}

func TestNewSubmissionToken(t *testing.T) {
	token := NewSubmissionToken()
	assert.Len(t, token, 32)
	assert.NotEqual(t, token, NewSubmissionToken())
}
