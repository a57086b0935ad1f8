package handlers

import (
	"context"
	"net/http"

	"github.com/deepdating/deep-dating-api/internal/middlewares"
	"github.com/deepdating/deep-dating-api/internal/models"
)

// MatchListing defines the interface that the match service must implement.
type MatchListing interface {
	List(ctx context.Context, userID int64) ([]models.MatchEntry, error)
}

// MatchesResponse lists the caller's matches
// swagger:model MatchesResponse
type MatchesResponse struct {
	Ok      bool                `json:"ok"`
	Count   int                 `json:"count"`
	Matches []models.MatchEntry `json:"matches"`
}

// NewListMatchesHandler returns an HTTP handler for the matches list.
// @Summary List my matches
// @Tags matches
// @Produce json
// @Success 200 {object} handlers.MatchesResponse "Matches, newest first"
// @Router /matches/me [get]
// @Security BearerAuth
func NewListMatchesHandler(svc MatchListing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		matches, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MatchesResponse{Ok: true, Count: len(matches), Matches: matches})
	}
}
