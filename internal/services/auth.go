package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/deepdating/deep-dating-api/internal/logger"
	"github.com/deepdating/deep-dating-api/internal/models"
)

// Error variables
var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("name, email and password are required")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserCreator defines the write operation needed for registration.
type UserCreator interface {
	Create(ctx context.Context, name, email, passwordHash string, gender, lookingFor, city, bio *string) (int64, error)
}

// TokenGenerator defines an interface for generating bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64, email, name string) (string, error)
}

// RegisterParams carries the registration payload. Optional profile fields
// may be nil.
type RegisterParams struct {
	Name       string
	Email      string
	Password   string
	Gender     *string
	LookingFor *string
	City       *string
	Bio        *string
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserCreator
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserCreator, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new account and returns its id. The password is
// bcrypt-hashed before it is stored; duplicate emails fail with
// ErrEmailTaken.
func (svc *AuthService) Register(ctx context.Context, p RegisterParams) (int64, error) {
	if p.Name == "" || p.Email == "" || p.Password == "" {
		return 0, ErrMissingFields
	}

	user, err := svc.reader.GetByEmail(ctx, p.Email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return 0, err
	}
	if user != nil {
		logger.Log.Infow("email already taken", "email", p.Email)
		return 0, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	id, err := svc.writer.Create(ctx, p.Name, p.Email, string(hashedPassword), p.Gender, p.LookingFor, p.City, p.Bio)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return id, nil
}

// Login authenticates a user and returns a signed token plus the user row.
// Unknown email and wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email, user.Name)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, user, nil
}
