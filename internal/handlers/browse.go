package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/deepdating/deep-dating-api/internal/middlewares"
	"github.com/deepdating/deep-dating-api/internal/models"
	"github.com/deepdating/deep-dating-api/internal/services"
)

// Discoverer defines the interface that the discovery service must
// implement.
type Discoverer interface {
	Browse(ctx context.Context, userID int64, cityOverride, genderOverride *string) (*services.BrowseResult, error)
}

// BrowseResponse is the discovery listing
// swagger:model BrowseResponse
type BrowseResponse struct {
	Ok          bool                   `json:"ok"`
	FiltersUsed services.BrowseFilters `json:"filters_used"`
	Count       int                    `json:"count"`
	Users       []models.UserPublic    `json:"users"`
}

// NewBrowseHandler returns an HTTP handler for the discovery listing.
// @Summary Browse candidate profiles
// @Description Up to 50 candidates, newest first. city and gender default to the caller's own city and looking_for preference. Excludes self, liked, passed and blocked users.
// @Tags users
// @Produce json
// @Param city query string false "City filter override"
// @Param gender query string false "Gender filter override"
// @Success 200 {object} handlers.BrowseResponse "Candidates"
// @Router /users/browse [get]
// @Security BearerAuth
func NewBrowseHandler(svc Discoverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		var city, gender *string
		if v := r.URL.Query().Get("city"); v != "" {
			city = &v
		}
		if v := r.URL.Query().Get("gender"); v != "" {
			gender = &v
		}

		result, err := svc.Browse(r.Context(), claims.UserID, city, gender)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeMessage(w, http.StatusNotFound, err.Error())
				return
			}
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BrowseResponse{
			Ok:          true,
			FiltersUsed: result.FiltersUsed,
			Count:       len(result.Users),
			Users:       result.Users,
		})
	}
}
