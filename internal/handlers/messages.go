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

// Conversationer defines the conversation operations used by the /messages
// handlers.
type Conversationer interface {
	Inbox(ctx context.Context, userID int64) ([]models.InboxEntry, error)
	Fetch(ctx context.Context, userID, matchID int64) ([]models.MessageDB, error)
	Send(ctx context.Context, userID, matchID int64, content string) (int64, error)
}

// InboxResponse lists the caller's conversations
// swagger:model InboxResponse
type InboxResponse struct {
	Ok    bool                `json:"ok"`
	Count int                 `json:"count"`
	Inbox []models.InboxEntry `json:"inbox"`
}

// MessagesResponse lists a conversation's messages
// swagger:model MessagesResponse
type MessagesResponse struct {
	Ok       bool               `json:"ok"`
	Count    int                `json:"count"`
	Messages []models.MessageDB `json:"messages"`
}

// SendMessageRequest is the message body
// swagger:model SendMessageRequest
type SendMessageRequest struct {
	// Message text, trimmed, 1-500 characters
	// required: true
	Content string `json:"content"`
}

// SendMessageResponse returns the new message id
// swagger:model SendMessageResponse
type SendMessageResponse struct {
	Ok        bool  `json:"ok"`
	MessageID int64 `json:"message_id"`
}

// NewInboxHandler returns an HTTP handler for the conversation list.
// @Summary List my conversations
// @Description One entry per match: counterpart, last message preview and unread count. Blocked conversations are excluded. Ordered by most recent activity.
// @Tags messages
// @Produce json
// @Success 200 {object} handlers.InboxResponse "Conversations"
// @Router /messages/inbox [get]
// @Security BearerAuth
func NewInboxHandler(svc Conversationer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		inbox, err := svc.Inbox(r.Context(), claims.UserID)
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, InboxResponse{Ok: true, Count: len(inbox), Inbox: inbox})
	}
}

// NewFetchMessagesHandler returns an HTTP handler fetching a conversation.
// Fetching marks every unread counterpart message as read first, so the
// returned read state is already current.
// @Summary Fetch a conversation and mark it read
// @Tags messages
// @Produce json
// @Param matchId path int true "Match id"
// @Success 200 {object} handlers.MessagesResponse "Up to 200 messages, oldest first"
// @Failure 403 {object} handlers.ErrorResponse "Not a participant, or conversation blocked"
// @Failure 404 {object} handlers.ErrorResponse "Match not found"
// @Router /messages/{matchId} [get]
// @Security BearerAuth
func NewFetchMessagesHandler(svc Conversationer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		matchID, err := strconv.ParseInt(chi.URLParam(r, "matchId"), 10, 64)
		if err != nil || matchID <= 0 {
			writeMessage(w, http.StatusBadRequest, "invalid match id")
			return
		}

		messages, err := svc.Fetch(r.Context(), claims.UserID, matchID)
		if err != nil {
			writeConversationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessagesResponse{Ok: true, Count: len(messages), Messages: messages})
	}
}

// NewSendMessageHandler returns an HTTP handler appending a message to a
// conversation.
// @Summary Send a message
// @Tags messages
// @Accept json
// @Produce json
// @Param matchId path int true "Match id"
// @Param sendRequest body handlers.SendMessageRequest true "Message content"
// @Success 200 {object} handlers.SendMessageResponse "Message stored"
// @Failure 400 {object} handlers.ErrorResponse "Empty or oversized content"
// @Failure 403 {object} handlers.ErrorResponse "Not a participant, or conversation blocked"
// @Failure 404 {object} handlers.ErrorResponse "Match not found"
// @Router /messages/{matchId} [post]
// @Security BearerAuth
func NewSendMessageHandler(svc Conversationer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		matchID, err := strconv.ParseInt(chi.URLParam(r, "matchId"), 10, 64)
		if err != nil || matchID <= 0 {
			writeMessage(w, http.StatusBadRequest, "invalid match id")
			return
		}

		var req SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		messageID, err := svc.Send(r.Context(), claims.UserID, matchID, req.Content)
		if err != nil {
			writeConversationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SendMessageResponse{Ok: true, MessageID: messageID})
	}
}

// writeConversationError maps the conversation error kinds shared by fetch
// and send onto HTTP statuses.
func writeConversationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyContent), errors.Is(err, services.ErrContentTooLong):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotMatchMember), errors.Is(err, services.ErrConversationBlocked):
		writeMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrMatchNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	default:
		writeInternal(w, err)
	}
}
