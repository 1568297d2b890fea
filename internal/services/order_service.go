package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/neha-5456/kaagjee/config"
	"github.com/neha-5456/kaagjee/internal/database"
	"github.com/neha-5456/kaagjee/internal/models"
)

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrHalfPaymentNotAllowed = errors.New("product does not allow half payment")
	ErrOrderNotFound         = errors.New("order not found")
)

// secondPaymentDue is how long after checkout the remaining half is due.
const secondPaymentDue = 7 * 24 * time.Hour

// OrderFilter narrows admin order queries.
type OrderFilter struct {
	UserID    *uint
	Status    *models.OrderStatus
	StartTime *time.Time
	EndTime   *time.Time
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Page      int
	Limit     int
}

// CheckoutRequest carries the authenticated user's snapshot details into
// the order. Name/email/phone are copied onto the order and stay immune to
// later profile edits.
type CheckoutRequest struct {
	UserID        uint
	PaymentType   models.PaymentType
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
}

// SplitAmounts computes the first/second payment legs for a total. For half
// payment the first leg is the rounded half and the second leg absorbs the
// rounding remainder so the two always sum exactly to the total.
func SplitAmounts(total decimal.Decimal, paymentType models.PaymentType) (first, second decimal.Decimal) {
	if paymentType == models.PaymentTypeHalf {
		first = total.Div(decimal.NewFromInt(2)).Round(2)
		second = total.Sub(first)
		return first, second
	}
	return total, decimal.Zero
}

// Checkout turns the user's cart into an order. The order, its items, the
// submission status flips and the cart clear all commit together or not at
// all. The cart rows are locked for the duration so a concurrent add cannot
// interleave with an in-flight checkout.
func Checkout(req CheckoutRequest) (*models.Order, error) {
	cart, err := GetOrCreateCart(req.UserID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	cfg, _ := config.LoadConfig()
	prefix := "CS"
	if cfg != nil && cfg.OrderNumberPrefix != "" {
		prefix = cfg.OrderNumberPrefix
	}

	var order *models.Order
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// Re-read the cart items under lock; the preloaded copy may be stale.
		var items []models.CartItem
		if err := database.LockForUpdate(tx).
			Where("cart_id = ?", cart.ID).
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(items))

		for _, item := range items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				return err
			}

			if req.PaymentType == models.PaymentTypeHalf && !product.AllowHalfPayment {
				return fmt.Errorf("%w: %s", ErrHalfPaymentNotAllowed, product.Title)
			}

			var submission models.FormSubmission
			if err := tx.First(&submission, item.SubmissionID).Error; err != nil {
				return err
			}

			total = total.Add(item.UnitPrice)

			productID := product.ID
			orderItems = append(orderItems, models.OrderItem{
				ProductID:          &productID,
				ProductTitle:       product.Title,
				ProductSlug:        product.Slug,
				UnitPrice:          item.UnitPrice,
				SubmissionToken:    submission.Token,
				FormData:           submission.FormData,
				FormSchemaSnapshot: submission.FormSchemaSnapshot,
			})

			if err := tx.Model(&models.Product{}).
				Where("id = ?", product.ID).
				Update("orders_count", gorm.Expr("orders_count + 1")).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		first, second := SplitAmounts(total, req.PaymentType)

		order = &models.Order{
			OrderNumber: models.NewOrderNumber(prefix, now),
			UserID:      req.UserID,
			Status:      models.OrderStatusPending,
			PaymentType: req.PaymentType,

			TotalAmount:         total,
			PaidAmount:          decimal.Zero,
			FirstPaymentAmount:  first,
			SecondPaymentAmount: second,

			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			CustomerNotes: req.Notes,

			Items: orderItems,
		}
		if req.PaymentType == models.PaymentTypeHalf {
			due := now.Add(secondPaymentDue)
			order.SecondPaymentDueDate = &due
		}
		order.RecomputeDerived(now)

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		return clearCartTx(tx, cart, models.SubmissionStatusOrdered)
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrderByNumber fetches an order scoped to its owner. Pass userID 0 for
// admin access.
func GetOrderByNumber(userID uint, orderNumber string) (*models.Order, error) {
	query := database.DB.Where("order_number = ?", orderNumber)
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}

	var order models.Order
	if err := query.
		Preload("Items").
		Preload("Payments").
		Preload("StatusHistory").
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// MyOrders lists a user's orders, newest first.
func MyOrders(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := database.DB.
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// PendingPaymentOrders lists the user's orders that still owe money.
func PendingPaymentOrders(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := database.DB.
		Where("user_id = ? AND status IN ?", userID,
			[]models.OrderStatus{models.OrderStatusPending, models.OrderStatusPartialPaid}).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus is the administrative transition path. It records a
// status-history entry before mutating and rejects unknown status values.
func UpdateOrderStatus(orderNumber string, newStatusRaw string, actorID uint, notes string) (*models.Order, error) {
	newStatus, err := models.ParseOrderStatus(newStatusRaw)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := database.LockForUpdate(tx).
			Where("order_number = ?", orderNumber).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		history := models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: order.Status,
			ToStatus:   newStatus,
			ChangedBy:  actorID,
			Notes:      notes,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		order.Status = newStatus
		if newStatus == models.OrderStatusCompleted && order.CompletedAt == nil {
			now := time.Now()
			order.CompletedAt = &now
		}

		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindOrders is the admin listing with filters and pagination.
func FindOrders(filter OrderFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := database.DB.Model(&models.Order{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
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
	if filter.MinAmount != nil {
		query = query.Where("total_amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("total_amount <= ?", *filter.MaxAmount)
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
	if err := query.Order("created_at desc").Limit(filter.Limit).Offset(offset).
		Preload("Items").Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}
