package api

import (
	"time"

	"chauffeur/database"
	"chauffeur/middleware"
	"chauffeur/models"
	"chauffeur/stats"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the dashboard aggregates.
type StatsHandler struct{}

// NewStatsHandler creates the stats handler.
func NewStatsHandler() *StatsHandler {
	return &StatsHandler{}
}

// Dashboard returns the full stats payload for the caller's rides.
// Filters narrow the aggregates but never the facet lists, so the
// dashboard can always offer every known month, client and brand.
// @Summary Dashboard statistics
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param month query string false "filter on month (YYYY-MM)"
// @Param client_name query string false "filter on exact client name"
// @Param car_brand query string false "filter on exact car brand"
// @Param date_from query string false "inclusive lower date bound (YYYY-MM-DD)"
// @Param date_to query string false "inclusive upper date bound (YYYY-MM-DD)"
// @Success 200 {object} Response{data=stats.Payload} "aggregates"
// @Failure 400 {object} Response "invalid filter"
// @Failure 401 {object} Response "not authenticated"
// @Router /api/stats [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	filter := stats.Filter{
		Month:      c.Query("month"),
		ClientName: c.Query("client_name"),
		CarBrand:   c.Query("car_brand"),
		DateFrom:   c.Query("date_from"),
		DateTo:     c.Query("date_to"),
	}
	for _, d := range []string{filter.DateFrom, filter.DateTo} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			BadRequest(c, "Ongeldige datum, verwacht YYYY-MM-DD")
			return
		}
	}
	if filter.DateFrom != "" && filter.DateTo != "" && filter.DateFrom > filter.DateTo {
		BadRequest(c, "date_from mag niet na date_to liggen")
		return
	}

	var allRides []models.Ride
	if err := database.DB.Where("user_id = ?", userID).Find(&allRides).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Ritten laden mislukt"))
		return
	}

	filtered := filter.Apply(allRides)
	Success(c, stats.Aggregate(filtered, allRides))
}
