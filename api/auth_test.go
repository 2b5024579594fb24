package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"chauffeur/config"
	"chauffeur/database"
	"chauffeur/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "name", "password", "created_at", "updated_at", "deleted_at"})
}

func TestAuthHandler_Register(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	defer func() { config.GlobalConfig = nil }()

	// email still free
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("jan@example.com").
		WillReturnRows(sqlmock.NewRows([]string{}))

	// user insert
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// default wage settings insert
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `wage_settings`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuthHandler(cfg)
	router.POST("/register", h.Register)

	body := `{"email":"jan@example.com","password":"wachtwoord123","name":"Jan Peeters"}`
	req := httptest.NewRequest("POST", "/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(200), resp["code"])
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_EmailExists(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("bestaat@example.com").
		WillReturnRows(userRows().
			AddRow(1, "bestaat@example.com", "Jan", "hash", time.Now(), time.Now(), nil))

	router := gin.New()
	h := NewAuthHandler(cfg)
	router.POST("/register", h.Register)

	body := `{"email":"bestaat@example.com","password":"wachtwoord123","name":"Jan"}`
	req := httptest.NewRequest("POST", "/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "E-mailadres al in gebruik", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("wachtwoord123"), bcrypt.DefaultCost)
	cfg := testConfig()
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("jan@example.com").
		WillReturnRows(userRows().
			AddRow(1, "jan@example.com", "Jan Peeters", string(hashed), time.Now(), time.Now(), nil))

	router := gin.New()
	h := NewAuthHandler(cfg)
	router.POST("/login", h.Login)

	body := `{"email":"jan@example.com","password":"wachtwoord123"}`
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(200), resp["code"])
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "Jan Peeters", user["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("juist"), bcrypt.DefaultCost)
	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("jan@example.com").
		WillReturnRows(userRows().
			AddRow(1, "jan@example.com", "Jan", string(hashed), time.Now(), time.Now(), nil))

	router := gin.New()
	h := NewAuthHandler(cfg)
	router.POST("/login", h.Login)

	body := `{"email":"jan@example.com","password":"fout"}`
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ongeldige inloggegevens", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("niemand@example.com").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	h := NewAuthHandler(cfg)
	router.POST("/login", h.Login)

	body := `{"email":"niemand@example.com","password":"iets"}`
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_ChangePassword_WrongOld(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("juist"), bcrypt.DefaultCost)
	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs(uint(1)).
		WillReturnRows(userRows().
			AddRow(1, "jan@example.com", "Jan", string(hashed), time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	h := NewAuthHandler(cfg)
	router.PUT("/password", h.ChangePassword)

	body := `{"old_password":"fout","new_password":"nieuwwachtwoord"}`
	req := httptest.NewRequest("PUT", "/password", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Oud wachtwoord is onjuist", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}
