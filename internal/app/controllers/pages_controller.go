package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PagesController serves the static marketing and confirmation pages.
type PagesController struct{}

// NewPagesController creates a new PagesController
func NewPagesController() *PagesController {
	return &PagesController{}
}

// Home renders the landing page.
func (c *PagesController) Home(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", gin.H{})
}

// Learn renders the learning-track page.
func (c *PagesController) Learn(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "learn.html", gin.H{})
}

// Research renders the research-track page.
func (c *PagesController) Research(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "research.html", gin.H{})
}

// Jobs renders the jobs page.
func (c *PagesController) Jobs(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "jobs.html", gin.H{})
}

// ThankYou renders the submission confirmation page.
func (c *PagesController) ThankYou(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "thank_you.html", gin.H{})
}
