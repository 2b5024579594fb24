package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardHandler_Get(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows().
			AddRow(1, "jan@example.com", "Jan", "hash", time.Now(), time.Now(), nil).
			AddRow(2, "piet@example.com", "Piet", "hash", time.Now(), time.Now(), nil))

	rows := sqlmock.NewRows(rideColumns())
	addRideRow(rows, "r1", "2024-01-15", "Hotel Amigo", "Mercedes", 9, 115.47, 112.34)
	rows.AddRow(
		"r2", 2, "2024-01-16", "Conrad", "BMW", "3-Serie",
		"08:00", "18:00", 0.0, 0.0, "",
		10.0, 9.0, 1.0, 0.0,
		115.47, 19.25, 0.0, 134.72, 0.0,
		3.65, 134.72, 131.07,
		time.Now(), time.Now(), nil,
	)
	mock.ExpectQuery("SELECT .* FROM `rides`").
		WillReturnRows(rows)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/leaderboard", NewLeaderboardHandler().Get)

	req := httptest.NewRequest("GET", "/leaderboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	require.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(2), first["user_id"])
	assert.Equal(t, 131.07, first["metric"])
	assert.Equal(t, float64(1), first["rides"])

	second := data[1].(map[string]interface{})
	assert.Equal(t, float64(1), second["user_id"])
	assert.Equal(t, 112.34, second["metric"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboardHandler_Get_BadPeriod(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/leaderboard", NewLeaderboardHandler().Get)

	req := httptest.NewRequest("GET", "/leaderboard?period=vorige_week", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestLeaderboardHandler_Get_BadMetric(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// the handler loads the data before the metric is validated
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())
	mock.ExpectQuery("SELECT .* FROM `rides`").
		WillReturnRows(sqlmock.NewRows(rideColumns()))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/leaderboard", NewLeaderboardHandler().Get)

	req := httptest.NewRequest("GET", "/leaderboard?metric=karma", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
