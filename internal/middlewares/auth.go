package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/deepdating/deep-dating-api/internal/jwt"
	"github.com/deepdating/deep-dating-api/internal/logger"
)

// ClaimsParser defines the minimal token interface needed by the middleware.
type ClaimsParser interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// claimsKey is an unexported context key type so only this package can set
// or shadow the authenticated identity.
type claimsKey struct{}

// Auth returns a middleware that verifies the bearer token on every request
// and stores the decoded claims in the request context. Missing or invalid
// tokens end the request with 401; no session state is kept.
func Auth(parser ClaimsParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := parser.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("missing bearer token", "err", err)
				writeUnauthorized(w, "missing bearer token")
				return
			}

			claims, err := parser.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("invalid bearer token", "err", err)
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(ctx, claims)))
		})
	}
}

// WithClaims returns a context carrying the authenticated identity.
func WithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaimsFromContext returns the authenticated identity set by Auth, or
// nil outside an authenticated request.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(struct {
		Ok      bool   `json:"ok"`
		Message string `json:"message"`
	}{Ok: false, Message: message})
}
