package api

import (
	"time"

	"chauffeur/database"
	"chauffeur/models"
	"chauffeur/stats"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler ranks drivers across accounts.
type LeaderboardHandler struct{}

// NewLeaderboardHandler creates the leaderboard handler.
func NewLeaderboardHandler() *LeaderboardHandler {
	return &LeaderboardHandler{}
}

// Get returns the cross-user ranking for one metric and period.
// @Summary Leaderboard
// @Description Ranks every driver with at least one ride in the period by the chosen metric.
// @Tags leaderboard
// @Produce json
// @Security BearerAuth
// @Param metric query string false "net, gross, hours or rides" default(net)
// @Param period query string false "all, last_month or custom" default(all)
// @Param date_from query string false "custom period lower bound (YYYY-MM-DD)"
// @Param date_to query string false "custom period upper bound (YYYY-MM-DD)"
// @Success 200 {object} Response{data=[]stats.LeaderboardRow} "ranking"
// @Failure 400 {object} Response "unknown metric or period"
// @Failure 401 {object} Response "not authenticated"
// @Router /api/leaderboard [get]
func (h *LeaderboardHandler) Get(c *gin.Context) {
	metric := c.DefaultQuery("metric", stats.MetricNet)
	period := c.DefaultQuery("period", stats.PeriodAll)

	dateFrom, dateTo, err := stats.PeriodWindow(period, c.Query("date_from"), c.Query("date_to"), time.Now())
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Gebruikers laden mislukt"))
		return
	}

	var rides []models.Ride
	if err := database.DB.Find(&rides).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Ritten laden mislukt"))
		return
	}

	rows, err := stats.Leaderboard(users, rides, metric, dateFrom, dateTo)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Success(c, rows)
}
