package middlewares

import (
	"encoding/json"
	"net/http"
)

// DevOnly hides a route outside development mode: anywhere else it answers
// 404 as if the route did not exist.
func DevOnly(env string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if env != "development" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(struct {
					Ok      bool   `json:"ok"`
					Message string `json:"message"`
				}{Ok: false, Message: "Not found"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
