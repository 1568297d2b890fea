package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/neha-5456/kaagjee/internal/database"
	"github.com/neha-5456/kaagjee/internal/models"
)

var (
	ErrMissingFormField   = errors.New("missing required form field")
	ErrSubmissionNotFound = errors.New("form submission not found")
)

// SubmitForm validates form data against the product's schema and creates a
// submission with price and schema snapshots. The backend only checks that
// required fields are present; field semantics belong to the frontend.
func SubmitForm(userID uint, productIDOrSlug string, formData map[string]interface{}) (*models.FormSubmission, error) {
	product, err := GetActiveProduct(productIDOrSlug)
	if err != nil {
		return nil, err
	}

	var schema []models.FormField
	if len(product.FormSchema) > 0 {
		if err := json.Unmarshal(product.FormSchema, &schema); err != nil {
			return nil, fmt.Errorf("invalid form schema for product %s: %w", product.Slug, err)
		}
	}

	for _, field := range schema {
		if !field.Required {
			continue
		}
		value, present := formData[field.Name]
		if !present || value == nil || value == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingFormField, field.Name)
		}
	}

	dataJSON, err := json.Marshal(formData)
	if err != nil {
		return nil, err
	}

	submission := &models.FormSubmission{
		Token:              models.NewSubmissionToken(),
		UserID:             userID,
		ProductID:          product.ID,
		FormData:           datatypes.JSON(dataJSON),
		FormSchemaSnapshot: product.FormSchema,
		PriceAtSubmission:  product.FullPrice,
		Status:             models.SubmissionStatusSubmitted,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if err := database.DB.Create(submission).Error; err != nil {
		return nil, err
	}
	return submission, nil
}

// MySubmissions lists a user's form submissions, newest first.
func MySubmissions(userID uint) ([]models.FormSubmission, error) {
	var submissions []models.FormSubmission
	if err := database.DB.
		Where("user_id = ?", userID).
		Preload("Product").
		Order("created_at desc").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// GetSubmissionByToken fetches one of the user's submissions.
func GetSubmissionByToken(userID uint, token string) (*models.FormSubmission, error) {
	var submission models.FormSubmission
	err := database.DB.
		Where("token = ? AND user_id = ?", token, userID).
		Preload("Product").
		First(&submission).Error
	if err != nil {
		return nil, ErrSubmissionNotFound
	}
	return &submission, nil
}
