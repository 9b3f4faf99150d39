package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "cashtrackr/internal/errors"
	"cashtrackr/internal/middleware"
	"cashtrackr/internal/services"
)

// AuthHandler handles account and session requests
type AuthHandler struct {
	userService services.UserServicer
	issuer      *middleware.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, issuer *middleware.TokenIssuer) *AuthHandler {
	return &AuthHandler{userService: userService, issuer: issuer}
}

// CreateAccountRequest represents the registration request payload
type CreateAccountRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// TokenRequest carries a 6-digit confirmation or reset code.
type TokenRequest struct {
	Token string `json:"token" binding:"required,len=6,numeric_token"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// EmailRequest carries the address a password reset is requested for.
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents the new password sent with a reset token.
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// UpdatePasswordRequest represents a password change by a signed-in user.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	Password        string `json:"password" binding:"required,min=8,max=72"`
}

// PasswordRequest carries a password to check.
type PasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateAccount handles user registration
// @Summary     Create an account
// @Description Register an unconfirmed account and email a confirmation code
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} MessageResponse "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/create-account [post]
func (h *AuthHandler) CreateAccount(c *gin.Context) {
	req, err := requestBody[CreateAccountRequest](c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, err := h.userService.CreateAccount(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account created, check your email to confirm it"})
}

// ConfirmAccount handles account confirmation
// @Summary     Confirm an account
// @Description Confirm an account with the emailed code
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body TokenRequest true "Confirmation code"
// @Success     200 {object} MessageResponse "Account confirmed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Invalid token"
// @Router      /auth/confirm-account [post]
func (h *AuthHandler) ConfirmAccount(c *gin.Context) {
	req, err := requestBody[TokenRequest](c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.ConfirmAccount(req.Token); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account confirmed"})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a confirmed user and get a session token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} LoginResponse "Session token"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Incorrect password"
// @Failure     403 {object} ErrorResponse "Account not confirmed"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req, err := requestBody[LoginRequest](c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.AttemptLogin(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.issuer.GenerateToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// ForgotPassword handles password reset requests
// @Summary     Request a password reset
// @Description Email a fresh reset code to the user
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body EmailRequest true "Account email"
// @Success     200 {object} MessageResponse "Instructions sent"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	req, err := requestBody[EmailRequest](c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Check your email for instructions"})
}

// ValidateToken reports whether a reset code is still pending
// @Summary     Validate a reset code
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body TokenRequest true "Reset code"
// @Success     200 {object} MessageResponse "Token is valid"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Token not found"
// @Router      /auth/validate-token [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	req, err := requestBody[TokenRequest](c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.ValidateToken(req.Token); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Valid token, set your new password"})
}

// ResetPassword sets a new password using a reset code
// @Summary     Reset password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       token   path string               true "Reset code"
// @Param       request body ResetPasswordRequest true "New password"
// @Success     200 {object} MessageResponse "Password reset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Token not found"
// @Router      /auth/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	req, err := requestBody[ResetPasswordRequest](c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.ResetPassword(c.Param("token"), req.Password); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// GetUser returns the authenticated user
// @Summary     Get current user
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} middleware.Identity "Current user"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /auth/user [get]
func (h *AuthHandler) GetUser(c *gin.Context) {
	identity, err := middleware.CurrentUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": identity})
}

// UpdatePassword changes the password of the authenticated user
// @Summary     Update password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdatePasswordRequest true "Current and new password"
// @Success     200 {object} MessageResponse "Password updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Incorrect current password"
// @Router      /auth/update-password [post]
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	req, err := requestBody[UpdatePasswordRequest](c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.UpdatePassword(userID, req.CurrentPassword, req.Password); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// CheckPassword verifies the authenticated user's password
// @Summary     Check password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PasswordRequest true "Password"
// @Success     200 {object} MessageResponse "Password is correct"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Incorrect password"
// @Router      /auth/check-password [post]
func (h *AuthHandler) CheckPassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	req, err := requestBody[PasswordRequest](c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.CheckPassword(userID, req.Password); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Correct password"})
}
