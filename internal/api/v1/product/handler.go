package product

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/neha-5456/kaagjee/internal/services"
	"github.com/neha-5456/kaagjee/internal/utils"
)

// List returns active products with pagination. The form schema is omitted
// from listings to keep the payload small.
func List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	products, total, err := services.ListActiveProducts(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list products"))
		return
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, toProductResponse(&products[i], false))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", gin.H{
		"products": responses,
		"total":    total,
		"page":     page,
		"limit":    limit,
	}))
}

// Get returns one active product by numeric id or slug, including the form
// schema so the frontend can render the application form.
func Get(c *gin.Context) {
	p, err := services.GetActiveProduct(c.Param("idOrSlug"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch product"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", toProductResponse(p, true)))
}
