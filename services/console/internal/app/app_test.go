package internal

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"metro-console/pkg/config"
	"metro-console/pkg/jwt"
	"metro-console/pkg/logger"
	"metro-console/services/console/internal/repo/preference"
	"metro-console/services/console/internal/session"
	"metro-console/services/console/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:      "0",
		CORSOrigins:     []string{"http://localhost:3000"},
		JWTSecret:       "test-secret-key",
		TokenTTL:        time.Hour,
		ToastDuration:   5 * time.Second,
		DefaultTheme:    "light",
		TicketFare:      30,
		RateLimit:       3,
		RateLimitWindow: time.Minute,
	}
}

func newTestRouter(t *testing.T, redisClient *redis.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	sessions := session.NewManager(nil)
	t.Cleanup(sessions.Close)

	var themes preference.ThemeRepository = preference.NewMemoryThemeRepository()
	if redisClient != nil {
		themes = preference.NewRedisThemeRepository(redisClient)
	}
	uc := usecase.NewConsoleUseCase(sessions, themes, usecase.Settings{TicketFare: cfg.TicketFare}, logger.Nop())

	return NewRouter(cfg, logger.Nop(), Deps{
		UseCase:     uc,
		JWT:         jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.TokenTTL),
		RedisClient: redisClient,
	})
}

func call(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func openSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := call(t, r, "POST", "/api/v1/sessions", "", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, nil)
	w := call(t, r, "GET", "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	r := newTestRouter(t, nil)
	w := call(t, r, "GET", "/api/v1/state", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminDashboardFlow(t *testing.T) {
	r := newTestRouter(t, nil)
	token := openSession(t, r)

	w := call(t, r, "GET", "/api/v1/admin/dashboard", token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = call(t, r, "POST", "/api/v1/auth/login", token, `{"userType":"user"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = call(t, r, "GET", "/api/v1/admin/dashboard", token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = call(t, r, "POST", "/api/v1/auth/login", token, `{"userType":"admin"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = call(t, r, "GET", "/api/v1/admin/dashboard", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var d struct {
		TotalTrains int `json:"totalTrains"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, 5, d.TotalTrains)

	w = call(t, r, "POST", "/api/v1/auth/logout", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = call(t, r, "GET", "/api/v1/admin/dashboard", token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDispatchAndReadSlice(t *testing.T) {
	r := newTestRouter(t, nil)
	token := openSession(t, r)

	w := call(t, r, "POST", "/api/v1/actions", token, `{"type":"trains/removeTrain","payload":"K102"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = call(t, r, "GET", "/api/v1/state/trains", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var trains struct {
		Trains []struct {
			ID string `json:"id"`
		} `json:"trains"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trains))
	assert.Len(t, trains.Trains, 4)

	w = call(t, r, "POST", "/api/v1/sessions/reset", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = call(t, r, "GET", "/api/v1/state/trains", token, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trains))
	assert.Len(t, trains.Trains, 5)
}

func TestEndedSessionIsGone(t *testing.T) {
	r := newTestRouter(t, nil)
	token := openSession(t, r)

	w := call(t, r, "DELETE", "/api/v1/sessions", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = call(t, r, "GET", "/api/v1/state", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateLimitWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r := newTestRouter(t, client)
	token := openSession(t, r)

	for i := 0; i < 3; i++ {
		w := call(t, r, "POST", "/api/v1/actions", token, `{"type":"app/toggleSidebar"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := call(t, r, "POST", "/api/v1/actions", token, `{"type":"app/toggleSidebar"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestSweepInterval(t *testing.T) {
	assert.Equal(t, time.Second, sweepInterval(time.Second))
	assert.Equal(t, 30*time.Minute/4, sweepInterval(30*time.Minute))
	assert.Equal(t, 5*time.Minute, sweepInterval(2*time.Hour))
}
