package services

import (
	"encoding/json"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/neha-5456/kaagjee/internal/database"
	"github.com/neha-5456/kaagjee/internal/models"
)

func setupCartTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(
		&models.User{}, &models.Product{}, &models.FormSubmission{},
		&models.Cart{}, &models.CartItem{},
	)
	db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.FormSubmission{},
		&models.Cart{}, &models.CartItem{},
	)

	database.DB = db
}

func seedCartProduct(slug, price string) models.Product {
	schema, _ := json.Marshal([]models.FormField{
		{Name: "company_name", Label: "Company Name", Type: "text", Required: true},
		{Name: "remarks", Label: "Remarks", Type: "text", Required: false},
	})
	p := models.Product{
		Title:            "Service " + slug,
		Slug:             slug,
		FullPrice:        decimal.RequireFromString(price),
		AllowHalfPayment: true,
		FormSchema:       datatypes.JSON(schema),
		Status:           models.ProductStatusActive,
	}
	database.DB.Create(&p)
	return p
}

func TestSubmitForm_RequiredFields(t *testing.T) {
	setupCartTestDB()
	product := seedCartProduct("gst-registration", "999.00")

	_, err := SubmitForm(1, product.Slug, map[string]interface{}{"remarks": "asap"})
	assert.ErrorIs(t, err, ErrMissingFormField)

	sub, err := SubmitForm(1, product.Slug, map[string]interface{}{"company_name": "Acme Pvt Ltd"})
	assert.NoError(t, err)
	assert.Len(t, sub.Token, 32)
	assert.Equal(t, models.SubmissionStatusSubmitted, sub.Status)
	assert.True(t, sub.PriceAtSubmission.Equal(product.FullPrice))
}

func TestSubmitForm_PriceSnapshot(t *testing.T) {
	setupCartTestDB()
	product := seedCartProduct("tax-audit", "999.00")

	sub, err := SubmitForm(1, product.Slug, map[string]interface{}{"company_name": "Acme"})
	assert.NoError(t, err)

	// A later price change must not affect the snapshot.
	database.DB.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("full_price", decimal.RequireFromString("1499.00"))

	item, err := AddToCart(1, sub.Token)
	assert.NoError(t, err)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("999.00")))
}

func TestAddToCart_FlipsStatusAndRejectsDuplicates(t *testing.T) {
	setupCartTestDB()
	product := seedCartProduct("company-reg", "4999.00")

	sub, err := SubmitForm(1, product.Slug, map[string]interface{}{"company_name": "Acme"})
	assert.NoError(t, err)

	item, err := AddToCart(1, sub.Token)
	assert.NoError(t, err)
	assert.True(t, item.UnitPrice.Equal(product.FullPrice))

	var refreshed models.FormSubmission
	database.DB.First(&refreshed, sub.ID)
	assert.Equal(t, models.SubmissionStatusInCart, refreshed.Status)

	// Same submission cannot enter the cart twice.
	_, err = AddToCart(1, sub.Token)
	assert.ErrorIs(t, err, ErrDuplicateSubmission)

	cart, err := GetOrCreateCart(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, cart.TotalItems())
	assert.True(t, cart.TotalAmount().Equal(product.FullPrice))
}

func TestRemoveCartItem_RevertsSubmission(t *testing.T) {
	setupCartTestDB()
	product := seedCartProduct("ngo-reg", "2500.00")

	sub, _ := SubmitForm(1, product.Slug, map[string]interface{}{"company_name": "Acme"})
	item, err := AddToCart(1, sub.Token)
	assert.NoError(t, err)

	err = RemoveCartItem(1, item.ID)
	assert.NoError(t, err)

	var refreshed models.FormSubmission
	database.DB.First(&refreshed, sub.ID)
	assert.Equal(t, models.SubmissionStatusSubmitted, refreshed.Status)

	// Reverted submission can be added again.
	_, err = AddToCart(1, sub.Token)
	assert.NoError(t, err)

	// Another user cannot remove it.
	err = RemoveCartItem(2, item.ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestClearCart(t *testing.T) {
	setupCartTestDB()
	p1 := seedCartProduct("service-a", "100.00")
	p2 := seedCartProduct("service-b", "200.00")

	s1, _ := SubmitForm(1, p1.Slug, map[string]interface{}{"company_name": "A"})
	s2, _ := SubmitForm(1, p2.Slug, map[string]interface{}{"company_name": "B"})
	AddToCart(1, s1.Token)
	AddToCart(1, s2.Token)

	cart, _ := GetOrCreateCart(1)
	assert.Equal(t, 2, cart.TotalItems())
	assert.True(t, cart.TotalAmount().Equal(decimal.RequireFromString("300.00")))

	assert.NoError(t, ClearCart(1))

	cart, _ = GetOrCreateCart(1)
	assert.Equal(t, 0, cart.TotalItems())

	var count int64
	database.DB.Model(&models.FormSubmission{}).
		Where("status = ?", models.SubmissionStatusSubmitted).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestGetOrCreateCart_OnePerUser(t *testing.T) {
	setupCartTestDB()

	first, err := GetOrCreateCart(1)
	assert.NoError(t, err)
	second, err := GetOrCreateCart(1)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	database.DB.Model(&models.Cart{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
