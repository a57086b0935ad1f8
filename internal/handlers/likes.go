package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/deepdating/deep-dating-api/internal/middlewares"
	"github.com/deepdating/deep-dating-api/internal/models"
	"github.com/deepdating/deep-dating-api/internal/services"
)

// LikeService defines the like operations used by the /likes handlers.
type LikeService interface {
	Like(ctx context.Context, actorID, targetID int64) (bool, error)
	ListOutgoingLikes(ctx context.Context, actorID int64) ([]models.LikeEntry, error)
	ResetLikes(ctx context.Context, actorID int64) error
}

// LikeResponse reports the swipe outcome
// swagger:model LikeResponse
type LikeResponse struct {
	Ok    bool `json:"ok"`
	Liked bool `json:"liked"`
	Match bool `json:"match"`
}

// LikesListResponse lists outgoing likes
// swagger:model LikesListResponse
type LikesListResponse struct {
	Ok    bool               `json:"ok"`
	Count int                `json:"count"`
	Likes []models.LikeEntry `json:"likes"`
}

// ResetResponse acknowledges a bulk reset
// swagger:model ResetResponse
type ResetResponse struct {
	Ok    bool `json:"ok"`
	Reset bool `json:"reset"`
}

// NewLikeHandler returns an HTTP handler for the like action.
// @Summary Like a user
// @Description Records a like; on a reciprocal like the canonical match is created. At most 30 likes per rolling 24h.
// @Tags likes
// @Produce json
// @Param userId path int true "Target user id"
// @Success 200 {object} handlers.LikeResponse "Like recorded; match reports whether a match now exists"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or self-targeting user id"
// @Failure 429 {object} handlers.ErrorResponse "Like quota exceeded"
// @Router /likes/{userId} [post]
// @Security BearerAuth
func NewLikeHandler(svc LikeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		targetID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
		if err != nil || targetID <= 0 {
			writeMessage(w, http.StatusBadRequest, "invalid user id")
			return
		}

		matched, err := svc.Like(r.Context(), claims.UserID, targetID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSelfAction):
				writeMessage(w, http.StatusBadRequest, "invalid user id")
			case errors.Is(err, services.ErrRateLimited):
				writeMessage(w, http.StatusTooManyRequests, err.Error())
			default:
				writeInternal(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, LikeResponse{Ok: true, Liked: true, Match: matched})
	}
}

// NewListLikesHandler returns an HTTP handler for the outgoing likes list.
// @Summary List my outgoing likes
// @Tags likes
// @Produce json
// @Success 200 {object} handlers.LikesListResponse "Outgoing likes, newest first"
// @Router /likes/me/outgoing [get]
// @Security BearerAuth
func NewListLikesHandler(svc LikeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		likes, err := svc.ListOutgoingLikes(r.Context(), claims.UserID)
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LikesListResponse{Ok: true, Count: len(likes), Likes: likes})
	}
}

// NewResetLikesHandler returns an HTTP handler wiping all outgoing likes of
// the caller (development convenience).
// @Summary Reset my outgoing likes
// @Tags likes
// @Produce json
// @Success 200 {object} handlers.ResetResponse "Likes wiped"
// @Router /likes/me/reset [delete]
// @Security BearerAuth
func NewResetLikesHandler(svc LikeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		if err := svc.ResetLikes(r.Context(), claims.UserID); err != nil {
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ResetResponse{Ok: true, Reset: true})
	}
}
