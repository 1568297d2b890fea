package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/neha-5456/kaagjee/config"
	"github.com/neha-5456/kaagjee/internal/database"
	"github.com/neha-5456/kaagjee/internal/models"
	"github.com/neha-5456/kaagjee/internal/payment"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInvalidAmount         = errors.New("invalid payment amount")
	ErrNoPendingAmount       = errors.New("order has no pending amount")
	ErrOrderClosed           = errors.New("order is cancelled or refunded")
	ErrSignatureVerification = errors.New("payment signature verification failed")
)

// gateway is wired at boot (razorpay in production, a fake in tests).
var gateway payment.Gateway

func SetGateway(g payment.Gateway) {
	gateway = g
}

// paymentAmount computes the amount owed for the requested leg.
func paymentAmount(order *models.Order, paymentFor models.PaymentFor) decimal.Decimal {
	switch paymentFor {
	case models.PaymentForSecond:
		return order.PendingAmount
	case models.PaymentForFirst:
		if order.PaymentType == models.PaymentTypeHalf {
			return order.FirstPaymentAmount
		}
		return order.TotalAmount.Sub(order.PaidAmount)
	default: // full
		return order.TotalAmount.Sub(order.PaidAmount)
	}
}

// InitiatePayment creates a gateway payment intent for one leg of an order
// and records it as a Payment row in created status. The gateway call runs
// first: on gateway failure nothing is persisted and the order is left
// untouched.
func InitiatePayment(userID uint, orderNumber string, paymentFor models.PaymentFor) (*models.Payment, *payment.GatewayOrder, error) {
	order, err := GetOrderByNumber(userID, orderNumber)
	if err != nil {
		return nil, nil, err
	}
	if order.IsClosed() {
		return nil, nil, ErrOrderClosed
	}

	amount := paymentAmount(order, paymentFor)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrInvalidAmount
	}

	cfg, _ := config.LoadConfig()
	currency := "INR"
	if cfg != nil && cfg.Currency != "" {
		currency = cfg.Currency
	}

	// Gateway wants minor units (paise for INR).
	amountMinor := amount.Shift(2).IntPart()

	gatewayOrder, err := gateway.CreateOrder(amountMinor, currency, order.OrderNumber, map[string]string{
		"order_number": order.OrderNumber,
		"payment_for":  string(paymentFor),
	})
	if err != nil {
		return nil, nil, err
	}

	pay := &models.Payment{
		PaymentID:       models.NewPaymentID(),
		OrderID:         order.ID,
		UserID:          userID,
		Amount:          amount,
		Currency:        currency,
		PaymentFor:      paymentFor,
		Status:          models.PaymentStatusCreated,
		RazorpayOrderID: gatewayOrder.ID,
	}

	if err := database.DB.Create(pay).Error; err != nil {
		return nil, nil, err
	}

	return pay, gatewayOrder, nil
}

// PayPending collects the remaining leg of a half-paid order.
func PayPending(userID uint, orderNumber string) (*models.Payment, *payment.GatewayOrder, error) {
	order, err := GetOrderByNumber(userID, orderNumber)
	if err != nil {
		return nil, nil, err
	}
	if order.IsClosed() {
		return nil, nil, ErrOrderClosed
	}
	if order.PendingAmount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrNoPendingAmount
	}

	return InitiatePayment(userID, orderNumber, models.PaymentForSecond)
}

// VerifyAndSettle reconciles a gateway confirmation against the pending
// Payment row and credits the order, atomically. Duplicate calls for an
// already-successful payment return the settled order unchanged; a bad
// signature fails the Payment (the failure is persisted as an audit trail)
// without touching the order.
func VerifyAndSettle(userID uint, gatewayOrderID, gatewayPaymentID, signature string) (*models.Order, error) {
	var pay models.Payment
	if err := database.DB.
		Where("razorpay_order_id = ? AND user_id = ?", gatewayOrderID, userID).
		First(&pay).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	// Idempotency: webhook retries for a settled payment must not
	// double-credit.
	if pay.Status == models.PaymentStatusSuccess {
		return getOrderByID(pay.OrderID)
	}

	if !gateway.VerifySignature(pay.RazorpayOrderID, gatewayPaymentID, signature) {
		// The failed attempt is recorded on purpose; the order stays as it was.
		database.DB.Model(&pay).Updates(map[string]interface{}{
			"status":              models.PaymentStatusFailed,
			"razorpay_payment_id": gatewayPaymentID,
			"error_message":       "signature verification failed",
		})
		return nil, ErrSignatureVerification
	}

	rawResponse, _ := json.Marshal(map[string]string{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": gatewayPaymentID,
		"razorpay_signature":  signature,
	})

	var order models.Order
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Re-read both rows under lock; the credit and the status
		// derivation must be read-modify-write atomic.
		if err := database.LockForUpdate(tx).
			First(&pay, pay.ID).Error; err != nil {
			return err
		}
		if pay.Status == models.PaymentStatusSuccess {
			return tx.First(&order, pay.OrderID).Error
		}

		if err := database.LockForUpdate(tx).
			First(&order, pay.OrderID).Error; err != nil {
			return err
		}

		now := time.Now()

		pay.Status = models.PaymentStatusSuccess
		pay.RazorpayPaymentID = gatewayPaymentID
		pay.RazorpaySignature = signature
		pay.GatewayResponse = datatypes.JSON(rawResponse)
		pay.PaidAt = &now
		if err := tx.Save(&pay).Error; err != nil {
			return err
		}

		order.PaidAmount = order.PaidAmount.Add(pay.Amount)
		switch pay.PaymentFor {
		case models.PaymentForSecond:
			order.SecondPaymentDate = &now
		default:
			order.FirstPaymentDate = &now
		}
		order.RecomputeDerived(now)

		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func getOrderByID(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := database.DB.Preload("Items").Preload("Payments").First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// MyPayments lists a user's payments, newest first.
func MyPayments(userID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := database.DB.
		Preload("Order").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// GetPaymentByID fetches one of the user's payments by its public id.
func GetPaymentByID(userID uint, paymentID string) (*models.Payment, error) {
	var pay models.Payment
	err := database.DB.
		Preload("Order").
		Where("payment_id = ? AND user_id = ?", paymentID, userID).
		First(&pay).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &pay, nil
}

// PaymentRecordFilter narrows admin payment queries.
type PaymentRecordFilter struct {
	UserID    *uint
	OrderID   *uint
	Status    *models.PaymentStatus
	StartTime *time.Time
	EndTime   *time.Time
	Page      int
	Limit     int
}

// FindPayments is the admin audit listing with filters and pagination.
func FindPayments(filter PaymentRecordFilter) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	query := database.DB.Model(&models.Payment{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.OrderID != nil {
		query = query.Where("order_id = ?", *filter.OrderID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.StartTime != nil {
		query = query.Where("created_at >= ?", *filter.StartTime)
	}
	if filter.EndTime != nil {
		query = query.Where("created_at <= ?", *filter.EndTime)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit
	if err := query.Preload("Order").Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}
