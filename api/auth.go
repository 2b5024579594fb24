package api

import (
	"chauffeur/config"
	"chauffeur/database"
	"chauffeur/middleware"
	"chauffeur/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles registration, login and profile endpoints.
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jan@example.com"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"wachtwoord123"`
	Name     string `json:"name" binding:"required,min=1,max=100" example:"Jan Peeters"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jan@example.com"`
	Password string `json:"password" binding:"required" example:"wachtwoord123"`
}

// LoginResponse carries the token plus the authenticated user.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register registers a new chauffeur account.
// @Summary Register
// @Description Creates a new account with default wage settings and returns a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "registration payload"
// @Success 200 {object} Response{data=LoginResponse} "registered"
// @Failure 400 {object} Response "invalid payload or email in use"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Ongeldige invoer"))
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		BadRequest(c, "E-mailadres al in gebruik")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "Wachtwoord versleutelen mislukt")
		return
	}

	user := models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashed),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Account aanmaken mislukt"))
		return
	}

	// Every account starts with the default wage settings.
	settings := models.DefaultWageSettings(user.ID)
	if err := database.DB.Create(&settings).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Instellingen aanmaken mislukt"))
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "Token genereren mislukt")
		return
	}

	Success(c, LoginResponse{Token: token, User: user})
}

// Login authenticates a chauffeur.
// @Summary Login
// @Description Verifies credentials and returns a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "login payload"
// @Success 200 {object} Response{data=LoginResponse} "logged in"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "wrong credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Ongeldige invoer"))
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		Unauthorized(c, "Ongeldige inloggegevens")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "Ongeldige inloggegevens")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "Token genereren mislukt")
		return
	}

	Success(c, LoginResponse{Token: token, User: user})
}

// GetMe returns the current account.
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "current user"
// @Failure 401 {object} Response "not authenticated"
// @Failure 404 {object} Response "account gone"
// @Router /api/auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "Gebruiker niet gevonden")
		return
	}

	Success(c, user)
}

// ChangePasswordRequest is the change-password payload.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=50"`
}

// ChangePassword updates the current user's password.
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "password payload"
// @Success 200 {object} Response "changed"
// @Failure 400 {object} Response "wrong old password"
// @Failure 401 {object} Response "not authenticated"
// @Router /api/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Ongeldige invoer"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "Gebruiker niet gevonden")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		BadRequest(c, "Oud wachtwoord is onjuist")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "Wachtwoord versleutelen mislukt")
		return
	}

	if err := database.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Wachtwoord bijwerken mislukt"))
		return
	}

	SuccessWithMessage(c, "Wachtwoord gewijzigd", nil)
}
