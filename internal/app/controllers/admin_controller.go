package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ltlab/internship-portal/internal/app/models"
	"github.com/ltlab/internship-portal/internal/app/services"
	"github.com/ltlab/internship-portal/internal/middleware"
)

// AdminController serves the session-protected application listing.
type AdminController struct {
	applicationService services.ApplicationService
	logger             zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(applicationService services.ApplicationService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		applicationService: applicationService,
		logger:             logger,
	}
}

// applicationRow is an Application prepared for template rendering, with the
// stored domains value decoded back into the selected list.
type applicationRow struct {
	*models.Application
	DomainList []string
}

// Applications lists every stored application, newest first.
func (c *AdminController) Applications(ctx *gin.Context) {
	applications, err := c.applicationService.List(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list applications")
		ctx.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": genericFailureMessage})
		return
	}

	rows := make([]applicationRow, 0, len(applications))
	for _, app := range applications {
		rows = append(rows, applicationRow{
			Application: app,
			DomainList:  models.DecodeDomains(app.Domains),
		})
	}

	ctx.HTML(http.StatusOK, "applications.html", gin.H{
		"Applications": rows,
		"Email":        ctx.GetString(middleware.SessionEmailKey),
	})
}
