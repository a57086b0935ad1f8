package services

import (
	"context"

	"github.com/deepdating/deep-dating-api/internal/models"
)

// MatchLister lists a user's matches joined with counterpart profiles.
type MatchLister interface {
	ListForUser(ctx context.Context, userID int64) ([]models.MatchEntry, error)
}

// MatchService exposes the matches listing.
type MatchService struct {
	matches MatchLister
}

func NewMatchService(matches MatchLister) *MatchService {
	return &MatchService{matches: matches}
}

// List returns the user's matches, newest first.
func (svc *MatchService) List(ctx context.Context, userID int64) ([]models.MatchEntry, error) {
	return svc.matches.ListForUser(ctx, userID)
}
