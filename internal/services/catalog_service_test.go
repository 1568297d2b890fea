package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/neha-5456/kaagjee/internal/database"
	"github.com/neha-5456/kaagjee/internal/models"
)

func setupCatalogTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.Product{})
	db.AutoMigrate(&models.Product{})

	database.DB = db
}

func TestCreateProduct_HalfPriceDefault(t *testing.T) {
	setupCatalogTestDB()

	p := models.Product{
		Title:            "Trademark Registration",
		Slug:             "trademark-registration",
		FullPrice:        decimal.RequireFromString("6999.00"),
		AllowHalfPayment: true,
		Status:           models.ProductStatusActive,
	}
	assert.NoError(t, CreateProduct(&p))
	assert.True(t, p.HalfPrice.Valid)
	assert.True(t, p.HalfPrice.Decimal.Equal(decimal.RequireFromString("3499.50")))

	// Explicit half price is left alone.
	q := models.Product{
		Title:            "GST Filing",
		Slug:             "gst-filing",
		FullPrice:        decimal.RequireFromString("1000.00"),
		HalfPrice:        decimal.NewNullDecimal(decimal.RequireFromString("600.00")),
		AllowHalfPayment: true,
		Status:           models.ProductStatusActive,
	}
	assert.NoError(t, CreateProduct(&q))
	assert.True(t, q.HalfPrice.Decimal.Equal(decimal.RequireFromString("600.00")))
}

func TestGetActiveProduct(t *testing.T) {
	setupCatalogTestDB()

	p := models.Product{
		Title:     "ITR Filing",
		Slug:      "itr-filing",
		FullPrice: decimal.RequireFromString("499.00"),
		Status:    models.ProductStatusActive,
	}
	assert.NoError(t, CreateProduct(&p))

	draft := models.Product{
		Title:     "Unpublished",
		Slug:      "unpublished",
		FullPrice: decimal.RequireFromString("100.00"),
		Status:    models.ProductStatusDraft,
	}
	assert.NoError(t, CreateProduct(&draft))

	// Lookup by slug and by numeric id both work.
	bySlug, err := GetActiveProduct("itr-filing")
	assert.NoError(t, err)
	assert.Equal(t, p.ID, bySlug.ID)

	byID, err := GetActiveProduct(fmt.Sprintf("%d", p.ID))
	assert.NoError(t, err)
	assert.Equal(t, p.ID, byID.ID)

	// Draft products are invisible to the public lookup.
	_, err = GetActiveProduct("unpublished")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = GetActiveProduct("does-not-exist")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateProduct_RenormalizesPricing(t *testing.T) {
	setupCatalogTestDB()

	p := models.Product{
		Title:            "FSSAI License",
		Slug:             "fssai-license",
		FullPrice:        decimal.RequireFromString("2000.00"),
		AllowHalfPayment: false,
		Status:           models.ProductStatusActive,
	}
	assert.NoError(t, CreateProduct(&p))
	assert.False(t, p.HalfPrice.Valid)

	updated, err := UpdateProduct(p.ID, map[string]interface{}{
		"allow_half_payment": true,
	})
	assert.NoError(t, err)
	assert.True(t, updated.HalfPrice.Valid)
	assert.True(t, updated.HalfPrice.Decimal.Equal(decimal.RequireFromString("1000.00")))

	_, err = UpdateProduct(9999, map[string]interface{}{"title": "x"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}
