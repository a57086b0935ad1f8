package middlewares

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/deepdating/deep-dating-api/internal/logger"
)

// RateLimit returns a per-client-IP request throttle backed by Redis: at
// most limit requests per window, counted in fixed windows so the counter
// state is shared across replicas. Redis being unreachable fails open.
func RateLimit(client *redis.Client, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientIP(r)
			bucket := time.Now().Unix() / int64(window.Seconds())
			key := fmt.Sprintf("throttle:%s:%d", ip, bucket)

			count, err := client.Incr(ctx, key).Result()
			if err != nil {
				logger.Log.Errorw("throttle counter unavailable", "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				client.Expire(ctx, key, window)
			}

			if count > int64(limit) {
				logger.Log.Infow("request throttled", "ip", ip, "count", count)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(struct {
					Ok      bool   `json:"ok"`
					Message string `json:"message"`
				}{Ok: false, Message: "too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
