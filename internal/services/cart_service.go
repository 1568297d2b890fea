package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/neha-5456/kaagjee/internal/database"
	"github.com/neha-5456/kaagjee/internal/models"
)

var (
	ErrDuplicateSubmission = errors.New("submission is already in a cart")
	ErrCartItemNotFound    = errors.New("cart item not found")
)

// GetOrCreateCart returns the user's cart, creating an empty one on first
// use. Idempotent.
func GetOrCreateCart(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := database.DB.
		Where(models.Cart{UserID: userID}).
		FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}

	if err := database.DB.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Submission").
		First(&cart, cart.ID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart links a submitted form to the user's cart. The submission can
// sit in at most one cart item; a second add fails with
// ErrDuplicateSubmission. The unit price snapshot comes from the
// submission's price-at-submission.
func AddToCart(userID uint, submissionToken string) (*models.CartItem, error) {
	submission, err := GetSubmissionByToken(userID, submissionToken)
	if err != nil {
		return nil, err
	}
	if submission.Status != models.SubmissionStatusSubmitted {
		return nil, ErrDuplicateSubmission
	}

	cart, err := GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	item := &models.CartItem{
		CartID:       cart.ID,
		ProductID:    submission.ProductID,
		SubmissionID: submission.ID,
		UnitPrice:    submission.PriceAtSubmission,
		AddedAt:      time.Now(),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			// Unique index on submission_id backs the one-to-one
			return ErrDuplicateSubmission
		}
		return tx.Model(&models.FormSubmission{}).
			Where("id = ?", submission.ID).
			Update("status", models.SubmissionStatusInCart).Error
	})
	if err != nil {
		return nil, err
	}

	database.DB.Preload("Product").Preload("Submission").First(item, item.ID)
	return item, nil
}

// RemoveCartItem deletes one item and reverts its submission to submitted.
func RemoveCartItem(userID uint, itemID uint) error {
	cart, err := GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	var item models.CartItem
	if err := database.DB.
		Where("id = ? AND cart_id = ?", itemID, cart.ID).
		First(&item).Error; err != nil {
		return ErrCartItemNotFound
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		return tx.Model(&models.FormSubmission{}).
			Where("id = ?", item.SubmissionID).
			Update("status", models.SubmissionStatusSubmitted).Error
	})
}

// ClearCart removes every item, reverting each submission to submitted.
// Never touches order or payment state.
func ClearCart(userID uint) error {
	cart, err := GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		return clearCartTx(tx, cart, models.SubmissionStatusSubmitted)
	})
}

// clearCartTx removes all cart items inside the caller's transaction,
// moving each linked submission to nextStatus. Checkout reuses it with
// status ordered; user-facing clear reverts to submitted.
func clearCartTx(tx *gorm.DB, cart *models.Cart, nextStatus models.SubmissionStatus) error {
	var items []models.CartItem
	if err := tx.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		return err
	}

	for _, item := range items {
		if err := tx.Model(&models.FormSubmission{}).
			Where("id = ?", item.SubmissionID).
			Update("status", nextStatus).Error; err != nil {
			return err
		}
	}

	return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
}
