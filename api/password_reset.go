package api

import (
	"time"

	"chauffeur/config"
	"chauffeur/database"
	"chauffeur/models"
	"chauffeur/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// resetTokenTTL is how long a reset link stays usable.
const resetTokenTTL = 30 * time.Minute

// PasswordResetHandler handles the forgot-password flow.
type PasswordResetHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewPasswordResetHandler creates the password reset handler.
func NewPasswordResetHandler(cfg *config.Config) *PasswordResetHandler {
	return &PasswordResetHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// RequestResetRequest asks for a reset link.
type RequestResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest consumes a reset token.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// RequestPasswordReset mails a reset link. To avoid leaking which
// addresses have an account, unknown emails get the same success
// response as known ones.
// @Summary Request password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RequestResetRequest true "email address"
// @Success 200 {object} Response "request accepted"
// @Failure 400 {object} Response "invalid email"
// @Failure 500 {object} Response "mail delivery failed"
// @Router /api/auth/password/request-reset [post]
func (h *PasswordResetHandler) RequestPasswordReset(c *gin.Context) {
	var req RequestResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Voer een geldig e-mailadres in")
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		SuccessWithMessage(c, "Als dit e-mailadres geregistreerd is, ontvang je een e-mail om je wachtwoord opnieuw in te stellen", nil)
		return
	}

	var existingToken models.PasswordReset
	if err := database.DB.Where("user_id = ? AND used = ? AND expires_at > ?", user.ID, false, time.Now()).First(&existingToken).Error; err == nil {
		SuccessWithMessage(c, "Er is al een e-mail verstuurd, controleer je inbox (en spamfolder)", nil)
		return
	}

	token, err := models.GenerateToken()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Token genereren mislukt"))
		return
	}

	passwordReset := models.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		Email:     req.Email,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}

	if err := database.DB.Create(&passwordReset).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Token opslaan mislukt"))
		return
	}

	resetLink := h.cfg.Server.BaseURL + "/#/reset-password?token=" + token

	if err := h.emailService.SendPasswordResetEmail(req.Email, user.Name, resetLink); err != nil {
		// The link never reached the user, so the token must not linger.
		database.DB.Delete(&passwordReset)
		InternalError(c, SafeErrorMessage(err, "E-mail verzenden mislukt"))
		return
	}

	SuccessWithMessage(c, "Een e-mail om je wachtwoord opnieuw in te stellen is verstuurd", nil)
}

// VerifyResetToken checks a reset token before the form is shown.
// @Summary Verify reset token
// @Tags auth
// @Produce json
// @Param token query string true "reset token"
// @Success 200 {object} Response "token valid"
// @Failure 400 {object} Response "token invalid, used or expired"
// @Router /api/auth/password/verify-token [get]
func (h *PasswordResetHandler) VerifyResetToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		BadRequest(c, "Token ontbreekt")
		return
	}

	var passwordReset models.PasswordReset
	if err := database.DB.Where("token = ?", token).First(&passwordReset).Error; err != nil {
		BadRequest(c, "Ongeldige token")
		return
	}

	if !passwordReset.IsValid() {
		message := "Token is niet meer geldig"
		if passwordReset.Used {
			message = "Deze token is al gebruikt"
		} else if passwordReset.IsExpired() {
			message = "Token is verlopen, vraag een nieuwe aan"
		}
		BadRequest(c, message)
		return
	}

	var user models.User
	database.DB.First(&user, passwordReset.UserID)

	Success(c, gin.H{
		"email": passwordReset.Email,
		"name":  user.Name,
	})
}

// ResetPassword sets a new password with a valid token and burns the
// token plus any other outstanding ones for the same account.
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "token and new password"
// @Success 200 {object} Response "password updated"
// @Failure 400 {object} Response "invalid payload or token"
// @Router /api/auth/password/reset [post]
func (h *PasswordResetHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Ongeldige invoer"))
		return
	}

	var passwordReset models.PasswordReset
	if err := database.DB.Where("token = ?", req.Token).First(&passwordReset).Error; err != nil {
		BadRequest(c, "Ongeldige token")
		return
	}

	if !passwordReset.IsValid() {
		BadRequest(c, "Token is verlopen of al gebruikt")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Wachtwoord versleutelen mislukt"))
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", passwordReset.UserID).Update("password", string(hashedPassword)).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Wachtwoord bijwerken mislukt"))
		return
	}

	database.DB.Model(&models.PasswordReset{}).
		Where("user_id = ? AND used = ?", passwordReset.UserID, false).
		Update("used", true)

	SuccessWithMessage(c, "Wachtwoord opnieuw ingesteld, log in met je nieuwe wachtwoord", nil)
}
