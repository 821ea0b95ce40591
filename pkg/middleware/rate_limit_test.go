package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter(t *testing.T, limit int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	router := setupTestRouter()
	router.Use(func(c *gin.Context) {
		if sid := c.GetHeader("X-Test-Session"); sid != "" {
			c.Set(SessionKey, sid)
		}
		c.Next()
	}, RateLimitMiddleware(client, limit, time.Minute))
	router.GET("/limited", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router, mr
}

func hit(router *gin.Engine, session string) int {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/limited", nil)
	if session != "" {
		req.Header.Set("X-Test-Session", session)
	}
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	router, _ := rateLimitedRouter(t, 2)

	assert.Equal(t, http.StatusOK, hit(router, "a"))
	assert.Equal(t, http.StatusOK, hit(router, "a"))
	assert.Equal(t, http.StatusTooManyRequests, hit(router, "a"))
}

func TestRateLimit_PerSession(t *testing.T) {
	router, _ := rateLimitedRouter(t, 1)

	assert.Equal(t, http.StatusOK, hit(router, "a"))
	assert.Equal(t, http.StatusOK, hit(router, "b"))
	assert.Equal(t, http.StatusTooManyRequests, hit(router, "a"))
}

func TestRateLimit_WindowExpires(t *testing.T) {
	router, mr := rateLimitedRouter(t, 1)

	assert.Equal(t, http.StatusOK, hit(router, "a"))
	assert.Equal(t, http.StatusTooManyRequests, hit(router, "a"))

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, hit(router, "a"))
}

func TestRateLimit_RedisUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	router := setupTestRouter()
	router.Use(RateLimitMiddleware(client, 1, time.Minute))
	router.GET("/limited", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusInternalServerError, hit(router, ""))
}
