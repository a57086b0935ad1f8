package handlers

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
)

// HealthResponse reports process liveness
// swagger:model HealthResponse
type HealthResponse struct {
	Ok   bool   `json:"ok"`
	Name string `json:"name"`
	Time string `json:"time"`
}

// DBCheckResponse reports database connectivity
// swagger:model DBCheckResponse
type DBCheckResponse struct {
	Ok bool   `json:"ok"`
	DB string `json:"db"`
}

// NewRootHandler returns the branding route.
// @Summary API greeting
// @Tags meta
// @Success 200 {string} string "Greeting"
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to the Deep Dating API"))
	}
}

// NewHealthHandler returns the liveness probe.
// @Summary Healthcheck
// @Tags meta
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Alive"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Ok:   true,
			Name: "deep-dating",
			Time: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// NewDBCheckHandler returns the database connectivity probe.
// @Summary Database check
// @Tags meta
// @Produce json
// @Success 200 {object} handlers.DBCheckResponse "Connected"
// @Failure 500 {object} handlers.DBCheckResponse "Unreachable"
// @Router /db-check [get]
func NewDBCheckHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeJSON(w, http.StatusInternalServerError, DBCheckResponse{Ok: false, DB: "error"})
			return
		}
		writeJSON(w, http.StatusOK, DBCheckResponse{Ok: true, DB: "connected"})
	}
}
