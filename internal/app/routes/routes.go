package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ltlab/internship-portal/internal/app/controllers"
	"github.com/ltlab/internship-portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	pagesController *controllers.PagesController,
	applicationController *controllers.ApplicationController,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	// --- Public pages ---
	router.GET("/", pagesController.Home)
	router.GET("/learn", pagesController.Learn)
	router.GET("/research", pagesController.Research)
	router.GET("/jobs", pagesController.Jobs)
	router.GET("/thank-you", pagesController.ThankYou)

	// --- Application form ---
	router.GET("/apply", applicationController.ShowForm)
	router.POST("/apply", applicationController.Submit)

	// --- Session stub ---
	router.GET("/login", authController.ShowLogin)
	router.POST("/login", authController.Login)
	router.GET("/logout", authController.Logout)
	router.GET("/forgot-password", authController.ShowForgotPassword)
	router.POST("/forgot-password", authController.ForgotPassword)

	// --- Session-protected admin pages ---
	admin := router.Group("/admin")
	admin.Use(sessionMiddleware.RequireSession())
	{
		admin.GET("/applications", adminController.Applications)
	}
}
