package services

import (
	"context"
	"errors"

	"github.com/deepdating/deep-dating-api/internal/logger"
	"github.com/deepdating/deep-dating-api/internal/models"
)

const browseLimit = 50

var ErrUserNotFound = errors.New("user not found")

// ProfileGetter resolves a user profile by id.
type ProfileGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// CandidateBrowser runs the discovery query with an exclusion set computed
// fresh per call.
type CandidateBrowser interface {
	Browse(ctx context.Context, userID int64, city, gender *string, limit int) ([]models.UserPublic, error)
}

// BrowseFilters reports the filters that were actually applied.
type BrowseFilters struct {
	City   *string `json:"city"`
	Gender *string `json:"gender"`
}

// BrowseResult is the discovery listing plus the effective filters.
type BrowseResult struct {
	FiltersUsed BrowseFilters       `json:"filters_used"`
	Users       []models.UserPublic `json:"users"`
}

// DiscoveryService computes the candidate list for a user. Pure read, no
// side effects.
type DiscoveryService struct {
	profiles ProfileGetter
	browser  CandidateBrowser
}

func NewDiscoveryService(profiles ProfileGetter, browser CandidateBrowser) *DiscoveryService {
	return &DiscoveryService{profiles: profiles, browser: browser}
}

// Browse returns up to 50 candidates for userID, newest first. Without
// overrides the city defaults to the user's own city and the gender filter
// to their looking_for preference, so discovery is self-scoping unless
// explicitly widened.
func (svc *DiscoveryService) Browse(ctx context.Context, userID int64, cityOverride, genderOverride *string) (*BrowseResult, error) {
	me, err := svc.profiles.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load requesting user", "err", err)
		return nil, err
	}
	if me == nil {
		return nil, ErrUserNotFound
	}

	city := cityOverride
	if city == nil {
		city = me.City
	}
	gender := genderOverride
	if gender == nil {
		gender = me.LookingFor
	}

	users, err := svc.browser.Browse(ctx, userID, city, gender, browseLimit)
	if err != nil {
		logger.Log.Errorw("failed to browse candidates", "err", err)
		return nil, err
	}

	return &BrowseResult{
		FiltersUsed: BrowseFilters{City: city, Gender: gender},
		Users:       users,
	}, nil
}
