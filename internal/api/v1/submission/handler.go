package submission

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neha-5456/kaagjee/internal/services"
	"github.com/neha-5456/kaagjee/internal/utils"
)

// SubmitForm validates the form data against the product's schema and
// creates a submission with a snapshot of the price and schema.
func SubmitForm(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var req SubmitFormRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	sub, err := services.SubmitForm(user.ID, c.Param("idOrSlug"), req.FormData)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Product not found"))
		case errors.Is(err, services.ErrMissingFormField):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to submit form"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Form submitted successfully", toSubmissionResponse(sub)))
}

// MySubmissions lists the authenticated user's submissions, newest first.
func MySubmissions(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	subs, err := services.MySubmissions(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list submissions"))
		return
	}

	responses := make([]SubmissionResponse, 0, len(subs))
	for i := range subs {
		responses = append(responses, toSubmissionResponse(&subs[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", responses))
}

// Get returns one of the user's submissions by token.
func Get(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	sub, err := services.GetSubmissionByToken(user.ID, c.Param("token"))
	if err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Submission not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch submission"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", toSubmissionResponse(sub)))
}
