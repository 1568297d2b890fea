package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/neha-5456/kaagjee/internal/models"
	"github.com/neha-5456/kaagjee/internal/services"
	"github.com/neha-5456/kaagjee/internal/utils"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListProducts returns all products regardless of status.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var status *models.ProductStatus
	if statusStr, exists := c.GetQuery("status"); exists {
		s := models.ProductStatus(statusStr)
		status = &s
	}
	category := c.Query("category")

	products, total, err := services.FindProducts(status, category, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list products"))
		return
	}

	items := make([]ProductListItem, 0, len(products))
	for i := range products {
		items = append(items, toProductListItem(&products[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", gin.H{
		"products": items,
		"total":    total,
		"page":     page,
		"limit":    limit,
	}))
}

// CreateProduct creates a product. The half price is filled in from the
// full price when half payment is allowed and no explicit value is given.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	p := models.Product{
		Title:            req.Title,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Category:         req.Category,
		FullPrice:        req.FullPrice,
		AllowHalfPayment: true,
		FormTitle:        req.FormTitle,
		Status:           models.ProductStatusDraft,
	}
	if req.HalfPrice != nil {
		p.HalfPrice = decimal.NewNullDecimal(*req.HalfPrice)
	}
	if req.AllowHalfPayment != nil {
		p.AllowHalfPayment = *req.AllowHalfPayment
	}
	if req.Status != "" {
		p.Status = models.ProductStatus(req.Status)
	}
	if len(req.FormSchema) > 0 {
		raw, err := json.Marshal(req.FormSchema)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid form schema"))
			return
		}
		p.FormSchema = datatypes.JSON(raw)
	}

	if err := services.CreateProduct(&p); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create product"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Product created", toProductListItem(&p)))
}

// UpdateProduct applies a partial update and re-normalizes pricing.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid product ID"))
		return
	}

	var req UpdateProductRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.ShortDescription != nil {
		updates["short_description"] = *req.ShortDescription
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.FullPrice != nil {
		updates["full_price"] = *req.FullPrice
	}
	if req.HalfPrice != nil {
		updates["half_price"] = *req.HalfPrice
	}
	if req.AllowHalfPayment != nil {
		updates["allow_half_payment"] = *req.AllowHalfPayment
	}
	if req.FormTitle != nil {
		updates["form_title"] = *req.FormTitle
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.FormSchema != nil {
		raw, err := json.Marshal(*req.FormSchema)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid form schema"))
			return
		}
		updates["form_schema"] = datatypes.JSON(raw)
	}

	p, err := services.UpdateProduct(uint(id), updates)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update product"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Product updated", toProductListItem(p)))
}
