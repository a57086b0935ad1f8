package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newThrottledHandler(t *testing.T, limit int) (http.Handler, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return RateLimit(client, limit, time.Minute)(next), mr
}

func TestRateLimit(t *testing.T) {
	handler, _ := newThrottledHandler(t, 3)

	do := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do("10.0.0.1:1234"))
	}
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:1234"))

	// Another client has its own counter.
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1234"))
}

func TestRateLimit_WindowExpires(t *testing.T) {
	handler, mr := newThrottledHandler(t, 1)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	// The counter key carries a TTL so a stuck window cannot throttle forever.
	assert.NotEmpty(t, mr.Keys())
	for _, key := range mr.Keys() {
		assert.Greater(t, mr.TTL(key), time.Duration(0))
	}
}

func TestRateLimit_FailsOpenWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimit(client, 1, time.Minute)(next)

	mr.Close()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDevOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("development passes through", func(t *testing.T) {
		rr := httptest.NewRecorder()
		DevOnly("development")(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/users/dev/1/avatar", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("production hides the route", func(t *testing.T) {
		rr := httptest.NewRecorder()
		DevOnly("production")(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/users/dev/1/avatar", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
