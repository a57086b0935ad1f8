package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deepdating/deep-dating-api/internal/jwt"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := jwt.New(jwt.WithSecretKey("test-secret"))

	validToken, err := tokens.Generate(context.Background(), 7, "alice@example.com", "Alice")
	assert.NoError(t, err)

	foreignToken, err := jwt.New(jwt.WithSecretKey("other-secret")).
		Generate(context.Background(), 7, "alice@example.com", "Alice")
	assert.NoError(t, err)

	tests := []struct {
		name             string
		authHeader       string
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name:           "no header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			authHeader:     "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			authHeader:     "Bearer not.a.token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong signing key",
			authHeader:     "Bearer " + foreignToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:             "valid token",
			authHeader:       "Bearer " + validToken,
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				claims := GetClaimsFromContext(r.Context())
				assert.NotNil(t, claims)
				assert.Equal(t, int64(7), claims.UserID)
				assert.Equal(t, "alice@example.com", claims.Email)

				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			Auth(tokens)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}

func TestGetClaimsFromContext_Empty(t *testing.T) {
	assert.Nil(t, GetClaimsFromContext(context.Background()))
}
