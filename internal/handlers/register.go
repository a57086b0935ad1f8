package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/deepdating/deep-dating-api/internal/services"
)

// Registerer defines the interface that the registration service must
// implement.
type Registerer interface {
	Register(ctx context.Context, p services.RegisterParams) (int64, error)
}

// RegisterRequest represents the JSON body for account creation
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	Name string `json:"name"`

	// Email, unique across accounts
	// required: true
	Email string `json:"email"`

	// Password, stored only as a bcrypt hash
	// required: true
	Password string `json:"password"`

	Gender     *string `json:"gender"`
	LookingFor *string `json:"looking_for"`
	City       *string `json:"city"`
	Bio        *string `json:"bio"`
}

// RegisterResponse represents a successful registration
// swagger:model RegisterResponse
type RegisterResponse struct {
	Ok     bool  `json:"ok"`
	UserID int64 `json:"user_id"`
}

// NewRegisterHandler returns an HTTP handler for account creation.
// @Summary Register a new account
// @Description Creates a user account. Email must be unique; the password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Registration request"
// @Success 200 {object} handlers.RegisterResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Missing required fields"
// @Failure 409 {object} handlers.ErrorResponse "Email already in use"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		userID, err := svc.Register(r.Context(), services.RegisterParams{
			Name:       req.Name,
			Email:      req.Email,
			Password:   req.Password,
			Gender:     req.Gender,
			LookingFor: req.LookingFor,
			City:       req.City,
			Bio:        req.Bio,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeMessage(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrEmailTaken):
				writeMessage(w, http.StatusConflict, err.Error())
			default:
				writeInternal(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, RegisterResponse{Ok: true, UserID: userID})
	}
}
