package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler_Dashboard(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	rows := sqlmock.NewRows(rideColumns())
	addRideRow(rows, "r1", "2024-01-15", "Hotel Amigo", "Mercedes", 9, 115.47, 112.34)
	addRideRow(rows, "r2", "2024-02-01", "Conrad", "BMW", 8, 102.64, 99.86)

	mock.ExpectQuery("SELECT .* FROM `rides`").
		WithArgs(uint(1)).
		WillReturnRows(rows)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/stats", NewStatsHandler().Dashboard)

	req := httptest.NewRequest("GET", "/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total_rides"])
	assert.Equal(t, 17.0, data["total_hours"])
	assert.Equal(t, 218.11, data["total_gross"])
	assert.Equal(t, 212.2, data["total_net"])
	assert.Len(t, data["monthly_earnings"], 2)
	assert.Len(t, data["day_of_week_stats"], 7)
	assert.Len(t, data["hourly_distribution"], 24)
	assert.ElementsMatch(t, []interface{}{"2024-02", "2024-01"}, data["available_months"].([]interface{}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsHandler_Dashboard_FilterNarrowsButKeepsFacets(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	rows := sqlmock.NewRows(rideColumns())
	addRideRow(rows, "r1", "2024-01-15", "Hotel Amigo", "Mercedes", 9, 115.47, 112.34)
	addRideRow(rows, "r2", "2024-02-01", "Conrad", "BMW", 8, 102.64, 99.86)

	// the query stays unfiltered; filtering happens in memory
	mock.ExpectQuery("SELECT .* FROM `rides`").
		WithArgs(uint(1)).
		WillReturnRows(rows)

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/stats", NewStatsHandler().Dashboard)

	req := httptest.NewRequest("GET", "/stats?month=2024-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total_rides"])
	assert.Equal(t, 112.34, data["total_net"])
	// facets still list both months
	assert.Len(t, data["available_months"], 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsHandler_Dashboard_BadDate(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/stats", NewStatsHandler().Dashboard)

	req := httptest.NewRequest("GET", "/stats?date_from=15-01-2024", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestStatsHandler_Dashboard_InvertedRange(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/stats", NewStatsHandler().Dashboard)

	req := httptest.NewRequest("GET", "/stats?date_from=2024-02-01&date_to=2024-01-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
