package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/deepdating/deep-dating-api/internal/middlewares"
	"github.com/deepdating/deep-dating-api/internal/models"
	"github.com/deepdating/deep-dating-api/internal/services"
)

// ProfileProvider defines the profile operations used by the /users/me
// handlers.
type ProfileProvider interface {
	Get(ctx context.Context, userID int64) (*models.UserDB, error)
	Update(ctx context.Context, userID int64, p models.UpdateProfileParams) error
	SetAvatarURL(ctx context.Context, userID int64, avatarURL string) error
}

// ProfileResponse wraps the caller's own profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	Ok   bool           `json:"ok"`
	User *models.UserDB `json:"user"`
}

// UpdateProfileRequest is the partial profile edit body; omitted fields
// stay unchanged
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Gender     *string `json:"gender"`
	LookingFor *string `json:"looking_for"`
	City       *string `json:"city"`
	Bio        *string `json:"bio"`
}

// UpdatedResponse acknowledges a write
// swagger:model UpdatedResponse
type UpdatedResponse struct {
	Ok      bool `json:"ok"`
	Updated bool `json:"updated"`
}

// NewGetMeHandler returns an HTTP handler for reading one's own profile.
// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/me [get]
// @Security BearerAuth
func NewGetMeHandler(svc ProfileProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		user, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeMessage(w, http.StatusNotFound, err.Error())
				return
			}
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{Ok: true, User: user})
	}
}

// NewUpdateMeHandler returns an HTTP handler for partial profile edits.
// @Summary Edit own profile
// @Description Partial update: omitted fields are unchanged. Length caps: name/city 80, gender/looking_for 20, bio 500.
// @Tags users
// @Accept json
// @Produce json
// @Param updateRequest body handlers.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} handlers.UpdatedResponse "Profile updated"
// @Failure 400 {object} handlers.ErrorResponse "Field too long"
// @Router /users/me [put]
// @Security BearerAuth
func NewUpdateMeHandler(svc ProfileProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		err := svc.Update(r.Context(), claims.UserID, models.UpdateProfileParams{
			Name:       req.Name,
			Gender:     req.Gender,
			LookingFor: req.LookingFor,
			City:       req.City,
			Bio:        req.Bio,
		})
		if err != nil {
			if errors.Is(err, services.ErrFieldTooLong) {
				writeMessage(w, http.StatusBadRequest, err.Error())
				return
			}
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UpdatedResponse{Ok: true, Updated: true})
	}
}

// DevSetAvatarRequest assigns an avatar URL directly (development seeding)
// swagger:model DevSetAvatarRequest
type DevSetAvatarRequest struct {
	AvatarURL string `json:"avatar_url"`
}

// NewDevSetAvatarHandler returns the development-only avatar assignment
// handler, used to seed profiles without going through the upload flow.
// The route is mounted behind the DevOnly middleware.
// @Summary Assign an avatar URL to any user (development only)
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param avatarRequest body handlers.DevSetAvatarRequest true "Avatar URL"
// @Success 200 {object} handlers.UpdatedResponse "Avatar set"
// @Failure 404 {object} handlers.ErrorResponse "Not found outside development"
// @Router /users/dev/{id}/avatar [put]
// @Security BearerAuth
func NewDevSetAvatarHandler(svc ProfileProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			writeMessage(w, http.StatusBadRequest, "invalid user id")
			return
		}

		var req DevSetAvatarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AvatarURL == "" {
			writeMessage(w, http.StatusBadRequest, "avatar_url is required")
			return
		}

		if err := svc.SetAvatarURL(r.Context(), id, req.AvatarURL); err != nil {
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UpdatedResponse{Ok: true, Updated: true})
	}
}
