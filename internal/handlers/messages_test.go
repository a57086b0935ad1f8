package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/deepdating/deep-dating-api/internal/jwt"
	"github.com/deepdating/deep-dating-api/internal/middlewares"
	"github.com/deepdating/deep-dating-api/internal/models"
	"github.com/deepdating/deep-dating-api/internal/services"
)

func TestInboxHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockConversationer(ctrl)
	inbox := []models.InboxEntry{{MatchID: 10, UserID: 2, Name: "Bob", UnreadCount: 3}}
	mockSvc.EXPECT().Inbox(gomock.Any(), int64(1)).Return(inbox, nil)

	req := authedRequest(http.MethodGet, "/messages/inbox", 1, nil)
	rr := httptest.NewRecorder()

	NewInboxHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp InboxResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Ok)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, int64(3), resp.Inbox[0].UnreadCount)
}

func TestFetchMessagesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		matchParam   string
		mockSetup    func(m *MockConversationer)
		expectedCode int
	}{
		{
			name:       "success",
			matchParam: "10",
			mockSetup: func(m *MockConversationer) {
				m.EXPECT().
					Fetch(gomock.Any(), int64(1), int64(10)).
					Return([]models.MessageDB{{ID: 100, MatchID: 10, SenderID: 2, Content: "hi"}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:       "match not found",
			matchParam: "99",
			mockSetup: func(m *MockConversationer) {
				m.EXPECT().
					Fetch(gomock.Any(), int64(1), int64(99)).
					Return(nil, services.ErrMatchNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:       "not a participant",
			matchParam: "10",
			mockSetup: func(m *MockConversationer) {
				m.EXPECT().
					Fetch(gomock.Any(), int64(1), int64(10)).
					Return(nil, services.ErrNotMatchMember)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:       "conversation blocked",
			matchParam: "10",
			mockSetup: func(m *MockConversationer) {
				m.EXPECT().
					Fetch(gomock.Any(), int64(1), int64(10)).
					Return(nil, services.ErrConversationBlocked)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "invalid match id",
			matchParam:   "xyz",
			mockSetup:    func(m *MockConversationer) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockConversationer(ctrl)
			tt.mockSetup(mockSvc)

			req := authedRequest(http.MethodGet, "/messages/"+tt.matchParam, 1, map[string]string{"matchId": tt.matchParam})
			rr := httptest.NewRecorder()

			NewFetchMessagesHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestSendMessageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		matchParam   string
		body         string
		mockSetup    func(m *MockConversationer)
		expectedCode int
	}{
		{
			name:       "success",
			matchParam: "10",
			body:       `{"content":"hello"}`,
			mockSetup: func(m *MockConversationer) {
				m.EXPECT().
					Send(gomock.Any(), int64(1), int64(10), "hello").
					Return(int64(55), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:       "empty content",
			matchParam: "10",
			body:       `{"content":"   "}`,
			mockSetup: func(m *MockConversationer) {
				m.EXPECT().
					Send(gomock.Any(), int64(1), int64(10), "   ").
					Return(int64(0), services.ErrEmptyContent)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:       "content too long",
			matchParam: "10",
			body:       `{"content":"x"}`,
			mockSetup: func(m *MockConversationer) {
				m.EXPECT().
					Send(gomock.Any(), int64(1), int64(10), "x").
					Return(int64(0), services.ErrContentTooLong)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:       "blocked",
			matchParam: "10",
			body:       `{"content":"hi"}`,
			mockSetup: func(m *MockConversationer) {
				m.EXPECT().
					Send(gomock.Any(), int64(1), int64(10), "hi").
					Return(int64(0), services.ErrConversationBlocked)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "invalid JSON",
			matchParam:   "10",
			body:         `{`,
			mockSetup:    func(m *MockConversationer) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockConversationer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/messages/"+tt.matchParam, bytes.NewBufferString(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("matchId", tt.matchParam)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = middlewares.WithClaims(ctx, &jwt.Claims{UserID: 1})
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()

			NewSendMessageHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp SendMessageResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Ok)
				assert.Equal(t, int64(55), resp.MessageID)
			}
		})
	}
}
