package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsHandler_Get_CreatesDefaults(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// no settings yet
	mock.ExpectQuery("SELECT .* FROM `wage_settings`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	// defaults get persisted on first access
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `wage_settings`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/settings", NewSettingsHandler().Get)

	req := httptest.NewRequest("GET", "/settings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 12.83, data["base_rate"])
	assert.Equal(t, 1.5, data["overtime_multiplier"])
	assert.Equal(t, 1.46, data["night_surcharge"])
	assert.Equal(t, 0.26, data["wwv_rate"])
	assert.Equal(t, 2.71, data["social_contribution_pct"])
	assert.Equal(t, 9.0, data["normal_hours_threshold"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsHandler_Get_Existing(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `wage_settings`").
		WithArgs(uint(1)).
		WillReturnRows(wageSettingsRows().AddRow(
			1, 15.0, 2.0, 1.46, 0.26, 2.71, 8.0, time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/settings", NewSettingsHandler().Get)

	req := httptest.NewRequest("GET", "/settings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 15.0, data["base_rate"])
	assert.Equal(t, 8.0, data["normal_hours_threshold"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsHandler_Update_Partial(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `wage_settings`").
		WithArgs(uint(1)).
		WillReturnRows(defaultSettingsRow())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `wage_settings`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/settings", NewSettingsHandler().Update)

	body := `{"base_rate":15.50}`
	req := httptest.NewRequest("PUT", "/settings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 15.50, data["base_rate"])
	// untouched fields keep their stored value
	assert.Equal(t, 1.5, data["overtime_multiplier"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsHandler_Update_Empty(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/settings", NewSettingsHandler().Update)

	req := httptest.NewRequest("PUT", "/settings", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Geen gegevens om bij te werken", resp["message"])
}

func TestSettingsHandler_Update_NegativeRate(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/settings", NewSettingsHandler().Update)

	req := httptest.NewRequest("PUT", "/settings", bytes.NewBufferString(`{"base_rate":-1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
