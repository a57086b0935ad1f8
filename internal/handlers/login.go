package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/deepdating/deep-dating-api/internal/models"
	"github.com/deepdating/deep-dating-api/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.UserDB, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// Password
	// required: true
	Password string `json:"password"`
}

// LoginUser is the caller's identity echoed back on login
// swagger:model LoginUser
type LoginUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse represents a successful login
// swagger:model LoginResponse
type LoginResponse struct {
	Ok    bool      `json:"ok"`
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Log in
// @Description Authenticate by email and password; returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Token issued"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeMessage(w, http.StatusUnauthorized, err.Error())
				return
			}
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Ok:    true,
			Token: token,
			User:  LoginUser{ID: user.ID, Name: user.Name, Email: user.Email},
		})
	}
}
