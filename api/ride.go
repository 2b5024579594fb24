package api

import (
	"errors"
	"time"

	"chauffeur/database"
	"chauffeur/middleware"
	"chauffeur/models"
	"chauffeur/wage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RideHandler handles ride CRUD.
type RideHandler struct{}

// NewRideHandler creates the ride handler.
func NewRideHandler() *RideHandler {
	return &RideHandler{}
}

// RideRequest is the create/update payload; the pay breakdown is
// always recomputed server-side from the caller's current settings.
type RideRequest struct {
	Date       string  `json:"date" binding:"required" example:"2024-01-15"`
	ClientName string  `json:"client_name" binding:"required,max=100" example:"Hotel Amigo"`
	CarBrand   string  `json:"car_brand" binding:"required,max=50" example:"Mercedes"`
	CarModel   string  `json:"car_model" binding:"required,max=50" example:"S-Klasse"`
	StartTime  string  `json:"start_time" binding:"required" example:"08:00"`
	EndTime    string  `json:"end_time" binding:"required" example:"17:30"`
	ExtraCosts float64 `json:"extra_costs" binding:"gte=0" example:"12.50"`
	WWVKm      float64 `json:"wwv_km" binding:"gte=0" example:"34"`
	Notes      string  `json:"notes" binding:"max=500" example:"luchthavenrit"`
}

// computeRide validates the request and fills a ride with its pay
// breakdown under the given settings.
func computeRide(req *RideRequest, settings models.WageSettings, ride *models.Ride) error {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return &wage.ValidationError{Field: "date", Reason: "ongeldige datum, verwacht YYYY-MM-DD"}
	}

	breakdown, err := wage.Compute(wage.Input{
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		ExtraCosts: req.ExtraCosts,
		WWVKm:      req.WWVKm,
	}, settings)
	if err != nil {
		return err
	}

	ride.Date = req.Date
	ride.ClientName = req.ClientName
	ride.CarBrand = req.CarBrand
	ride.CarModel = req.CarModel
	ride.StartTime = req.StartTime
	ride.EndTime = req.EndTime
	ride.ExtraCosts = req.ExtraCosts
	ride.WWVKm = req.WWVKm
	ride.Notes = req.Notes
	ride.TotalHours = breakdown.TotalHours
	ride.NormalHours = breakdown.NormalHours
	ride.OvertimeHours = breakdown.OvertimeHours
	ride.NightHours = breakdown.NightHours
	ride.NormalPay = breakdown.NormalPay
	ride.OvertimePay = breakdown.OvertimePay
	ride.NightPay = breakdown.NightPay
	ride.GrossPay = breakdown.GrossPay
	ride.WWVAmount = breakdown.WWVAmount
	ride.SocialContribution = breakdown.SocialContribution
	ride.GrossTotal = breakdown.GrossTotal
	ride.NetPay = breakdown.NetPay
	return nil
}

// Create logs a new ride.
// @Summary Create ride
// @Description Computes the pay breakdown from the caller's current wage settings and stores the ride.
// @Tags rides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RideRequest true "ride"
// @Success 201 {object} Response{data=models.Ride} "created"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "not authenticated"
// @Router /api/rides [post]
func (h *RideHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req RideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Ongeldige invoer"))
		return
	}

	settings, err := loadOrDefaultSettings(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Instellingen laden mislukt"))
		return
	}

	ride := models.Ride{
		ID:     uuid.NewString(),
		UserID: userID,
	}
	if err := computeRide(&req, settings, &ride); err != nil {
		var verr *wage.ValidationError
		if errors.As(err, &verr) {
			BadRequest(c, verr.Error())
			return
		}
		InternalError(c, SafeErrorMessage(err, "Rit berekenen mislukt"))
		return
	}

	if err := database.DB.Create(&ride).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Rit opslaan mislukt"))
		return
	}

	Created(c, ride)
}

// List returns the caller's rides, newest first.
// @Summary List rides
// @Tags rides
// @Produce json
// @Security BearerAuth
// @Param month query string false "filter on month (YYYY-MM)"
// @Success 200 {object} Response{data=[]models.Ride} "rides"
// @Failure 401 {object} Response "not authenticated"
// @Router /api/rides [get]
func (h *RideHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	query := database.DB.Where("user_id = ?", userID)
	if month := c.Query("month"); month != "" {
		query = query.Where("date LIKE ?", month+"%")
	}

	var rides []models.Ride
	if err := query.Order("date DESC").Find(&rides).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Ritten laden mislukt"))
		return
	}

	Success(c, rides)
}

// Get returns one ride.
// @Summary Get ride
// @Tags rides
// @Produce json
// @Security BearerAuth
// @Param id path string true "ride id"
// @Success 200 {object} Response{data=models.Ride} "ride"
// @Failure 401 {object} Response "not authenticated"
// @Failure 404 {object} Response "not found"
// @Router /api/rides/{id} [get]
func (h *RideHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var ride models.Ride
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&ride).Error; err != nil {
		NotFound(c, "Rit niet gevonden")
		return
	}

	Success(c, ride)
}

// Update rewrites a ride. The breakdown is recomputed with the wage
// settings in effect now, not the ones stored with the old version.
// @Summary Update ride
// @Tags rides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ride id"
// @Param request body RideRequest true "ride"
// @Success 200 {object} Response{data=models.Ride} "updated"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "not authenticated"
// @Failure 404 {object} Response "not found"
// @Router /api/rides/{id} [put]
func (h *RideHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var ride models.Ride
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&ride).Error; err != nil {
		NotFound(c, "Rit niet gevonden")
		return
	}

	var req RideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Ongeldige invoer"))
		return
	}

	settings, err := loadOrDefaultSettings(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Instellingen laden mislukt"))
		return
	}

	if err := computeRide(&req, settings, &ride); err != nil {
		var verr *wage.ValidationError
		if errors.As(err, &verr) {
			BadRequest(c, verr.Error())
			return
		}
		InternalError(c, SafeErrorMessage(err, "Rit berekenen mislukt"))
		return
	}

	if err := database.DB.Save(&ride).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Rit opslaan mislukt"))
		return
	}

	Success(c, ride)
}

// Delete removes a ride.
// @Summary Delete ride
// @Tags rides
// @Produce json
// @Security BearerAuth
// @Param id path string true "ride id"
// @Success 200 {object} Response "deleted"
// @Failure 401 {object} Response "not authenticated"
// @Failure 404 {object} Response "not found"
// @Router /api/rides/{id} [delete]
func (h *RideHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var ride models.Ride
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&ride).Error; err != nil {
		NotFound(c, "Rit niet gevonden")
		return
	}

	if err := database.DB.Delete(&ride).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Rit verwijderen mislukt"))
		return
	}

	SuccessWithMessage(c, "Rit verwijderd", nil)
}
