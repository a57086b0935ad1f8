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

// BlockingService defines the block operations used by the /blocks handlers.
type BlockingService interface {
	Block(ctx context.Context, actorID, targetID int64) error
	ListBlocks(ctx context.Context, actorID int64) ([]models.BlockEntry, error)
	Unblock(ctx context.Context, actorID, targetID int64) (bool, error)
}

// BlockResponse acknowledges a block
// swagger:model BlockResponse
type BlockResponse struct {
	Ok      bool `json:"ok"`
	Blocked bool `json:"blocked"`
}

// BlocksListResponse lists blocks
// swagger:model BlocksListResponse
type BlocksListResponse struct {
	Ok     bool                `json:"ok"`
	Count  int                 `json:"count"`
	Blocks []models.BlockEntry `json:"blocks"`
}

// UnblockedResponse reports whether an unblock removed anything
// swagger:model UnblockedResponse
type UnblockedResponse struct {
	Ok        bool `json:"ok"`
	Unblocked bool `json:"unblocked"`
}

// NewBlockHandler returns an HTTP handler for the block action. The insert
// is directional but the effect is bidirectional: both users disappear from
// each other's inbox and shared conversations become inaccessible.
// @Summary Block a user
// @Tags blocks
// @Produce json
// @Param userId path int true "Target user id"
// @Success 200 {object} handlers.BlockResponse "Block recorded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or self-targeting user id"
// @Router /blocks/{userId} [post]
// @Security BearerAuth
func NewBlockHandler(svc BlockingService) http.HandlerFunc {
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

		if err := svc.Block(r.Context(), claims.UserID, targetID); err != nil {
			if errors.Is(err, services.ErrSelfAction) {
				writeMessage(w, http.StatusBadRequest, "invalid user id")
				return
			}
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BlockResponse{Ok: true, Blocked: true})
	}
}

// NewListBlocksHandler returns an HTTP handler for the blocks list.
// @Summary List my blocks
// @Tags blocks
// @Produce json
// @Success 200 {object} handlers.BlocksListResponse "Blocks, newest first"
// @Router /blocks/me [get]
// @Security BearerAuth
func NewListBlocksHandler(svc BlockingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		blocks, err := svc.ListBlocks(r.Context(), claims.UserID)
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BlocksListResponse{Ok: true, Count: len(blocks), Blocks: blocks})
	}
}

// NewUnblockHandler returns an HTTP handler removing a block.
// @Summary Unblock a user
// @Tags blocks
// @Produce json
// @Param userId path int true "Target user id"
// @Success 200 {object} handlers.UnblockedResponse "unblocked reports whether a block was removed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Router /blocks/{userId} [delete]
// @Security BearerAuth
func NewUnblockHandler(svc BlockingService) http.HandlerFunc {
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

		unblocked, err := svc.Unblock(r.Context(), claims.UserID, targetID)
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UnblockedResponse{Ok: true, Unblocked: unblocked})
	}
}
