package api

import (
	"errors"

	"chauffeur/database"
	"chauffeur/middleware"
	"chauffeur/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SettingsHandler handles the wage settings endpoints.
type SettingsHandler struct{}

// NewSettingsHandler creates the settings handler.
func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{}
}

// UpdateSettingsRequest is a partial wage settings update: omitted
// fields keep their stored value.
type UpdateSettingsRequest struct {
	BaseRate              *float64 `json:"base_rate" binding:"omitempty,gte=0" example:"12.83"`
	OvertimeMultiplier    *float64 `json:"overtime_multiplier" binding:"omitempty,gte=1" example:"1.5"`
	NightSurcharge        *float64 `json:"night_surcharge" binding:"omitempty,gte=0" example:"1.46"`
	WWVRate               *float64 `json:"wwv_rate" binding:"omitempty,gte=0" example:"0.26"`
	SocialContributionPct *float64 `json:"social_contribution_pct" binding:"omitempty,gte=0" example:"2.71"`
	NormalHoursThreshold  *float64 `json:"normal_hours_threshold" binding:"omitempty,gte=0" example:"9"`
}

// loadOrDefaultSettings returns the user's wage settings, creating
// the defaults on first access.
func loadOrDefaultSettings(userID uint) (models.WageSettings, error) {
	var settings models.WageSettings
	err := database.DB.Where("user_id = ?", userID).First(&settings).Error
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return settings, err
	}
	settings = models.DefaultWageSettings(userID)
	if err := database.DB.Create(&settings).Error; err != nil {
		return settings, err
	}
	return settings, nil
}

// Get returns the current user's wage settings.
// @Summary Get wage settings
// @Description Returns the wage settings, creating the defaults on first access.
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.WageSettings} "settings"
// @Failure 401 {object} Response "not authenticated"
// @Router /api/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	settings, err := loadOrDefaultSettings(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Instellingen laden mislukt"))
		return
	}

	Success(c, settings)
}

// Update partially updates the current user's wage settings. Rides
// keep the settings they were computed with; nothing is recomputed.
// @Summary Update wage settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSettingsRequest true "fields to update"
// @Success 200 {object} Response{data=models.WageSettings} "updated settings"
// @Failure 400 {object} Response "invalid payload or nothing to update"
// @Failure 401 {object} Response "not authenticated"
// @Router /api/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Ongeldige invoer"))
		return
	}

	if req.BaseRate == nil && req.OvertimeMultiplier == nil && req.NightSurcharge == nil &&
		req.WWVRate == nil && req.SocialContributionPct == nil && req.NormalHoursThreshold == nil {
		BadRequest(c, "Geen gegevens om bij te werken")
		return
	}

	settings, err := loadOrDefaultSettings(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Instellingen laden mislukt"))
		return
	}

	if req.BaseRate != nil {
		settings.BaseRate = *req.BaseRate
	}
	if req.OvertimeMultiplier != nil {
		settings.OvertimeMultiplier = *req.OvertimeMultiplier
	}
	if req.NightSurcharge != nil {
		settings.NightSurcharge = *req.NightSurcharge
	}
	if req.WWVRate != nil {
		settings.WWVRate = *req.WWVRate
	}
	if req.SocialContributionPct != nil {
		settings.SocialContributionPct = *req.SocialContributionPct
	}
	if req.NormalHoursThreshold != nil {
		settings.NormalHoursThreshold = *req.NormalHoursThreshold
	}

	if err := database.DB.Save(&settings).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Instellingen opslaan mislukt"))
		return
	}

	Success(c, settings)
}
