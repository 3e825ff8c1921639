package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ltlab/internship-portal/internal/app/models/dto"
	"github.com/ltlab/internship-portal/internal/app/services"
	"github.com/ltlab/internship-portal/internal/pkg/auth"
)

const loginErrorMessage = "Invalid email or password."

// forgotPasswordMessage deliberately does not reveal whether the account
// exists. No mail is sent; the flow is a stub.
const forgotPasswordMessage = "If that account exists, password reset instructions have been issued."

// AuthController handles the session login stub.
type AuthController struct {
	authService   services.AuthService
	sessionMaxAge time.Duration
	secureCookies bool
	logger        zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, sessionMaxAge time.Duration, secureCookies bool, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:   authService,
		sessionMaxAge: sessionMaxAge,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

// ShowLogin renders the login form.
func (c *AuthController) ShowLogin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login checks the posted credentials and starts a session.
func (c *AuthController) Login(ctx *gin.Context) {
	var form dto.LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.HTML(http.StatusOK, "login.html", gin.H{"Error": loginErrorMessage})
		return
	}

	token, err := c.authService.Login(form.Email, form.Password)
	if err != nil {
		ctx.HTML(http.StatusOK, "login.html", gin.H{"Error": loginErrorMessage})
		return
	}

	ctx.SetCookie(auth.SessionCookieName, token, int(c.sessionMaxAge.Seconds()), "/", "", c.secureCookies, true)
	ctx.Redirect(http.StatusFound, "/admin/applications")
}

// Logout drops the session cookie.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(auth.SessionCookieName, "", -1, "/", "", c.secureCookies, true)
	ctx.Redirect(http.StatusFound, "/")
}

// ShowForgotPassword renders the forgot-password form.
func (c *AuthController) ShowForgotPassword(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "forgot_password.html", gin.H{})
}

// ForgotPassword acknowledges a reset request without sending anything.
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var form dto.ForgotPasswordForm
	if err := ctx.ShouldBind(&form); err == nil && form.Email != "" {
		c.logger.Info().Str("email", form.Email).Msg("Password reset requested")
	}
	ctx.HTML(http.StatusOK, "forgot_password.html", gin.H{"Message": forgotPasswordMessage})
}
