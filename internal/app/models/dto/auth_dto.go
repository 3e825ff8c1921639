package dto

// LoginForm carries the credentials posted to the login page.
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// ForgotPasswordForm carries the account identifier posted to the
// forgot-password page.
type ForgotPasswordForm struct {
	Email string `form:"email"`
}
