package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type SubmissionStatus string

const (
	SubmissionStatusDraft      SubmissionStatus = "draft"
	SubmissionStatusSubmitted  SubmissionStatus = "submitted"
	SubmissionStatusInCart     SubmissionStatus = "in_cart"
	SubmissionStatusOrdered    SubmissionStatus = "ordered"
	SubmissionStatusProcessing SubmissionStatus = "processing"
	SubmissionStatusCompleted  SubmissionStatus = "completed"
	SubmissionStatusCancelled  SubmissionStatus = "cancelled"
)

// submissionTransitions is the closed transition table for submissions.
// Terminal states have no outgoing edges.
var submissionTransitions = map[SubmissionStatus][]SubmissionStatus{
	SubmissionStatusDraft:      {SubmissionStatusSubmitted, SubmissionStatusCancelled},
	SubmissionStatusSubmitted:  {SubmissionStatusInCart, SubmissionStatusCancelled},
	SubmissionStatusInCart:     {SubmissionStatusSubmitted, SubmissionStatusOrdered},
	SubmissionStatusOrdered:    {SubmissionStatusProcessing, SubmissionStatusCompleted, SubmissionStatusCancelled},
	SubmissionStatusProcessing: {SubmissionStatusCompleted, SubmissionStatusCancelled},
}

func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	for _, allowed := range submissionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// FormSubmission is one user's filled application form for one product,
// created before checkout. PriceAtSubmission is a snapshot of the product's
// full price at creation time and is never recomputed.
type FormSubmission struct {
	ID        uint   `gorm:"primarykey"`
	Token     string `gorm:"uniqueIndex;type:varchar(32);not null"`
	UserID    uint   `gorm:"index;not null"`
	ProductID uint   `gorm:"index;not null"`
	Product   Product

	FormData           datatypes.JSON   `gorm:"type:json;not null"`
	FormSchemaSnapshot datatypes.JSON   `gorm:"type:json"`
	PriceAtSubmission  decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Status             SubmissionStatus `gorm:"type:varchar(20);default:'submitted';index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSubmissionToken returns a 32-char hex token.
func NewSubmissionToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
