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

// PassService defines the pass operations used by the /passes handlers.
type PassService interface {
	Pass(ctx context.Context, actorID, targetID int64) error
	ListPasses(ctx context.Context, actorID int64) ([]models.PassEntry, error)
	UndoPass(ctx context.Context, actorID, targetID int64) (bool, error)
}

// PassResponse acknowledges a pass
// swagger:model PassResponse
type PassResponse struct {
	Ok     bool `json:"ok"`
	Passed bool `json:"passed"`
}

// PassesListResponse lists passes
// swagger:model PassesListResponse
type PassesListResponse struct {
	Ok     bool               `json:"ok"`
	Count  int                `json:"count"`
	Passes []models.PassEntry `json:"passes"`
}

// UndoneResponse reports whether an undo removed anything
// swagger:model UndoneResponse
type UndoneResponse struct {
	Ok     bool `json:"ok"`
	Undone bool `json:"undone"`
}

// NewPassHandler returns an HTTP handler for the pass action.
// @Summary Pass on a user
// @Tags passes
// @Produce json
// @Param userId path int true "Target user id"
// @Success 200 {object} handlers.PassResponse "Pass recorded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or self-targeting user id"
// @Router /passes/{userId} [post]
// @Security BearerAuth
func NewPassHandler(svc PassService) http.HandlerFunc {
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

		if err := svc.Pass(r.Context(), claims.UserID, targetID); err != nil {
			if errors.Is(err, services.ErrSelfAction) {
				writeMessage(w, http.StatusBadRequest, "invalid user id")
				return
			}
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PassResponse{Ok: true, Passed: true})
	}
}

// NewListPassesHandler returns an HTTP handler for the passes list.
// @Summary List my passes
// @Tags passes
// @Produce json
// @Success 200 {object} handlers.PassesListResponse "Passes, newest first"
// @Router /passes/me [get]
// @Security BearerAuth
func NewListPassesHandler(svc PassService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		passes, err := svc.ListPasses(r.Context(), claims.UserID)
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PassesListResponse{Ok: true, Count: len(passes), Passes: passes})
	}
}

// NewUndoPassHandler returns an HTTP handler undoing a pass, letting the
// target reappear in discovery.
// @Summary Undo a pass
// @Tags passes
// @Produce json
// @Param userId path int true "Target user id"
// @Success 200 {object} handlers.UndoneResponse "undone reports whether a pass was removed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Router /passes/{userId} [delete]
// @Security BearerAuth
func NewUndoPassHandler(svc PassService) http.HandlerFunc {
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

		undone, err := svc.UndoPass(r.Context(), claims.UserID, targetID)
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UndoneResponse{Ok: true, Undone: undone})
	}
}
