package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ltlab/internship-portal/internal/app/models/dto"
	"github.com/ltlab/internship-portal/internal/app/services"
	"github.com/ltlab/internship-portal/internal/pkg/apperrors"
)

// genericFailureMessage is shown when persistence fails. Store error detail
// stays in the logs.
const genericFailureMessage = "Something went wrong while saving your application. Please try again later."

// ApplicationController handles the application form pages.
type ApplicationController struct {
	applicationService services.ApplicationService
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService, logger zerolog.Logger) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		logger:             logger,
	}
}

// ShowForm renders the empty application form.
func (c *ApplicationController) ShowForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "apply.html", gin.H{})
}

// Submit consumes one posted application. On success it redirects to the
// confirmation page; a validation failure re-renders the form with the fixed
// message and a persistence failure yields a generic error page.
func (c *ApplicationController) Submit(ctx *gin.Context) {
	var form dto.ApplicationForm
	if err := ctx.ShouldBind(&form); err != nil {
		// An unparseable body carries no usable field values; treat it like
		// an incomplete submission.
		c.logger.Warn().Err(err).Msg("Failed to bind application form")
		ctx.HTML(http.StatusOK, "apply.html", gin.H{"Error": services.ValidationErrorMessage})
		return
	}

	_, err := c.applicationService.Submit(ctx, &form)
	switch {
	case errors.Is(err, apperrors.ErrIncompleteApplication):
		ctx.HTML(http.StatusOK, "apply.html", gin.H{"Error": services.ValidationErrorMessage})
	case err != nil:
		ctx.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": genericFailureMessage})
	default:
		ctx.Redirect(http.StatusFound, "/thank-you")
	}
}
