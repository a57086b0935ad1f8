package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/deepdating/deep-dating-api/internal/models"
	"github.com/deepdating/deep-dating-api/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserCreator(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		params       services.RegisterParams
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantID       int64
		wantErr      error
	}{
		{
			name:    "successful registration",
			params:  services.RegisterParams{Name: "Alice", Email: "alice@example.com", Password: "pass123"},
			wantID:  1,
			wantErr: nil,
		},
		{
			name:    "missing name",
			params:  services.RegisterParams{Email: "bob@example.com", Password: "pass123"},
			wantErr: services.ErrMissingFields,
		},
		{
			name:    "missing password",
			params:  services.RegisterParams{Name: "Bob", Email: "bob@example.com"},
			wantErr: services.ErrMissingFields,
		},
		{
			name:         "email already taken",
			params:       services.RegisterParams{Name: "Bob", Email: "bob@example.com", Password: "pass123"},
			existingUser: &models.UserDB{ID: 42, Email: "bob@example.com"},
			wantErr:      services.ErrEmailTaken,
		},
		{
			name:      "reader error",
			params:    services.RegisterParams{Name: "Eve", Email: "eve@example.com", Password: "pass123"},
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			params:    services.RegisterParams{Name: "Carol", Email: "carol@example.com", Password: "pass123"},
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.params.Name != "" && tt.params.Email != "" && tt.params.Password != "" {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), tt.params.Email).
					Return(tt.existingUser, tt.readerErr)

				if tt.existingUser == nil && tt.readerErr == nil {
					mockWriter.EXPECT().
						Create(gomock.Any(), tt.params.Name, tt.params.Email, gomock.Any(), nil, nil, nil, nil).
						Return(tt.wantID, tt.writerErr)
				}
			}

			id, err := svc.Register(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserCreator(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	mockReader.EXPECT().
		GetByEmail(gomock.Any(), "alice@example.com").
		Return(nil, nil)

	var storedHash string
	mockWriter.EXPECT().
		Create(gomock.Any(), "Alice", "alice@example.com", gomock.Any(), nil, nil, nil, nil).
		DoAndReturn(func(_ context.Context, _, _, hash string, _, _, _, _ *string) (int64, error) {
			storedHash = hash
			return 1, nil
		})

	_, err := svc.Register(context.Background(), services.RegisterParams{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	assert.NoError(t, err)
	assert.NotEqual(t, "secret", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret")))
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserCreator(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	knownUser := &models.UserDB{
		ID:           7,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name      string
		email     string
		password  string
		user      *models.UserDB
		readerErr error
		tokenErr  error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			password:  "correct",
			user:      knownUser,
			wantToken: "signed-token",
		},
		{
			name:     "empty credentials",
			email:    "",
			password: "",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "whatever",
			user:     nil,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "incorrect",
			user:     knownUser,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			password:  "correct",
			readerErr: errors.New("db down"),
			wantErr:   errors.New("db down"),
		},
		{
			name:     "token error",
			email:    "alice@example.com",
			password: "correct",
			user:     knownUser,
			tokenErr: errors.New("sign failed"),
			wantErr:  errors.New("sign failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.email != "" && tt.password != "" {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), tt.email).
					Return(tt.user, tt.readerErr)
			}
			if tt.user != nil && tt.readerErr == nil && tt.password == "correct" {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.ID, tt.user.Email, tt.user.Name).
					Return(tt.wantToken, tt.tokenErr)
			}

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, tt.user, user)
			}
		})
	}
}
