package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"metro-console/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func sessionRouter(jwtService *jwt.Service) *gin.Engine {
	router := setupTestRouter()
	router.Use(SessionMiddleware(jwtService))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session_id": c.GetString(SessionKey)})
	})
	return router
}

func TestSessionMiddleware_BearerToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, err := jwtService.GenerateToken("session-123")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	sessionRouter(jwtService).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "session-123")
}

func TestSessionMiddleware_QueryToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, err := jwtService.GenerateToken("session-456")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test?token="+token, nil)
	sessionRouter(jwtService).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "session-456")
}

func TestSessionMiddleware_NoToken(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	sessionRouter(jwt.NewService("test-secret-key")).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionMiddleware_InvalidFormat(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat token")
	sessionRouter(jwt.NewService("test-secret-key")).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionMiddleware_WrongSecret(t *testing.T) {
	token, err := jwt.NewService("other-secret").GenerateToken("session-123")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	sessionRouter(jwt.NewService("test-secret-key")).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type stubChecker struct {
	admin bool
	err   error
}

func (s stubChecker) IsAdmin(string) (bool, error) { return s.admin, s.err }

func adminRouter(checker AdminChecker) *gin.Engine {
	router := setupTestRouter()
	router.Use(func(c *gin.Context) { c.Set(SessionKey, "s1"); c.Next() }, AdminOnly(checker))
	router.GET("/admin", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return router
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name    string
		checker stubChecker
		want    int
	}{
		{"admin", stubChecker{admin: true}, http.StatusNoContent},
		{"not admin", stubChecker{}, http.StatusForbidden},
		{"unknown session", stubChecker{err: errors.New("session not found")}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/admin", nil)
			adminRouter(tt.checker).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
