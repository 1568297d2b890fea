package cart

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/neha-5456/kaagjee/internal/services"
	"github.com/neha-5456/kaagjee/internal/utils"
)

func Get(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	cart, err := services.GetOrCreateCart(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", toCartResponse(cart)))
}

// Count returns just the item count, for the cart badge.
func Count(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	cart, err := services.GetOrCreateCart(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", gin.H{"count": cart.TotalItems()}))
}

func Add(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var req AddToCartRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	item, err := services.AddToCart(user.ID, req.SubmissionToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubmissionNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Submission not found"))
		case errors.Is(err, services.ErrDuplicateSubmission):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to add to cart"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Added to cart", toCartItemResponse(item)))
}

func Remove(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	itemID, err := strconv.ParseUint(c.Param("itemID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid cart item ID"))
		return
	}

	if err := services.RemoveCartItem(user.ID, uint(itemID)); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Cart item not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to remove cart item"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Removed from cart", nil))
}

func Clear(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	if err := services.ClearCart(user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to clear cart"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Cart cleared", nil))
}
