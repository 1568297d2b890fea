package services

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/neha-5456/kaagjee/internal/database"
	"github.com/neha-5456/kaagjee/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// GetActiveProduct resolves an active product by numeric id or slug.
func GetActiveProduct(idOrSlug string) (*models.Product, error) {
	query := database.DB.Where("status = ?", models.ProductStatusActive)
	if id, err := strconv.ParseUint(idOrSlug, 10, 64); err == nil {
		query = query.Where("id = ?", uint(id))
	} else {
		query = query.Where("slug = ?", idOrSlug)
	}

	var product models.Product
	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// ListActiveProducts returns a paginated page of active products.
func ListActiveProducts(page, limit int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	query := database.DB.Model(&models.Product{}).Where("status = ?", models.ProductStatusActive)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// FindProducts is the admin listing: all statuses, optional filters.
func FindProducts(status *models.ProductStatus, category string, page, limit int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	query := database.DB.Model(&models.Product{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// CreateProduct persists a new product after pricing normalization.
func CreateProduct(product *models.Product) error {
	product.NormalizePricing()
	return database.DB.Create(product).Error
}

// UpdateProduct applies updates to a product and re-normalizes pricing.
func UpdateProduct(id uint, updates map[string]interface{}) (*models.Product, error) {
	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
		return nil, err
	}

	database.DB.First(&product, id)
	product.NormalizePricing()
	if err := database.DB.Save(&product).Error; err != nil {
		return nil, err
	}

	return &product, nil
}
