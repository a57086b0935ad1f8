package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/deepdating/deep-dating-api/internal/logger"
	"github.com/deepdating/deep-dating-api/internal/models"
)

// ErrFieldTooLong wraps per-field length violations of a profile update.
var ErrFieldTooLong = errors.New("field too long")

// Per-field length caps for profile updates.
const (
	maxNameLen       = 80
	maxCityLen       = 80
	maxGenderLen     = 20
	maxLookingForLen = 20
	maxBioLen        = 500
)

// ProfileWriter defines the write operations for profile edits.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, id int64, p models.UpdateProfileParams) error
	SetAvatarURL(ctx context.Context, id int64, avatarURL string) error
}

// ProfileService reads and edits the caller's own profile.
type ProfileService struct {
	reader ProfileGetter
	writer ProfileWriter
}

func NewProfileService(reader ProfileGetter, writer ProfileWriter) *ProfileService {
	return &ProfileService{reader: reader, writer: writer}
}

// Get returns the user's own profile.
func (svc *ProfileService) Get(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load profile", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies a partial profile edit. Omitted (nil) fields stay
// unchanged. Length caps are checked before any write.
func (svc *ProfileService) Update(ctx context.Context, userID int64, p models.UpdateProfileParams) error {
	if err := validateProfileParams(p); err != nil {
		return err
	}
	return svc.writer.UpdateProfile(ctx, userID, p)
}

// SetAvatarURL points the user's profile at a new avatar file.
func (svc *ProfileService) SetAvatarURL(ctx context.Context, userID int64, avatarURL string) error {
	if avatarURL == "" {
		return fmt.Errorf("%w: avatar_url is required", ErrEmptyContent)
	}
	return svc.writer.SetAvatarURL(ctx, userID, avatarURL)
}

func validateProfileParams(p models.UpdateProfileParams) error {
	checks := []struct {
		field string
		value *string
		max   int
	}{
		{"name", p.Name, maxNameLen},
		{"city", p.City, maxCityLen},
		{"gender", p.Gender, maxGenderLen},
		{"looking_for", p.LookingFor, maxLookingForLen},
		{"bio", p.Bio, maxBioLen},
	}
	for _, c := range checks {
		if c.value != nil && len([]rune(*c.value)) > c.max {
			return fmt.Errorf("%w: %s exceeds %d characters", ErrFieldTooLong, c.field, c.max)
		}
	}
	return nil
}
