package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// short 200ms window, at most 2 attempts
	router := gin.New()
	router.Use(LoginRateLimit(2, 200*time.Millisecond))
	router.POST("/login", func(c *gin.Context) {
		c.String(200, "ok")
	})

	// third attempt from the same IP gets 429
	doReq := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/login", nil)
		req.Header.Set("X-Real-IP", ip)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w1 := doReq("192.168.1.1")
	w2 := doReq("192.168.1.1")
	w3 := doReq("192.168.1.1")

	assert.Equal(t, 200, w1.Code)
	assert.Equal(t, 200, w2.Code)
	assert.Equal(t, http.StatusTooManyRequests, w3.Code)
	assert.Contains(t, w3.Body.String(), "inlogpogingen")

	// a different IP is unaffected
	w4 := doReq("192.168.1.2")
	w5 := doReq("192.168.1.2")
	assert.Equal(t, 200, w4.Code)
	assert.Equal(t, 200, w5.Code)
}
