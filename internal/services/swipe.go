package services

import (
	"context"
	"errors"
	"time"

	"github.com/deepdating/deep-dating-api/internal/logger"
	"github.com/deepdating/deep-dating-api/internal/models"
)

// Like quota: at most 30 like actions per rolling 24-hour window.
const (
	likeQuota  = 30
	likeWindow = 24 * time.Hour
)

var (
	ErrSelfAction  = errors.New("action targets the acting user")
	ErrRateLimited = errors.New("like limit reached (30 per 24h)")
)

// LikeStore defines the like operations the swipe service depends on.
type LikeStore interface {
	Insert(ctx context.Context, likerID, likedID int64) error
	Exists(ctx context.Context, likerID, likedID int64) (bool, error)
	CountSince(ctx context.Context, likerID int64, since time.Time) (int64, error)
	ListOutgoing(ctx context.Context, likerID int64) ([]models.LikeEntry, error)
	DeleteAllByLiker(ctx context.Context, likerID int64) error
}

// PassStore defines the pass operations the swipe service depends on.
type PassStore interface {
	Insert(ctx context.Context, passerID, passedID int64) error
	List(ctx context.Context, passerID int64) ([]models.PassEntry, error)
	Delete(ctx context.Context, passerID, passedID int64) (bool, error)
}

// MatchWriter records a canonical match pair idempotently.
type MatchWriter interface {
	Insert(ctx context.Context, user1ID, user2ID int64) error
}

// SwipeService records like and pass decisions and derives matches from
// reciprocal likes.
type SwipeService struct {
	likes   LikeStore
	passes  PassStore
	matches MatchWriter
	events  EventWriter
}

// NewSwipeService creates a new SwipeService. events may be nil.
func NewSwipeService(likes LikeStore, passes PassStore, matches MatchWriter, events EventWriter) *SwipeService {
	return &SwipeService{
		likes:   likes,
		passes:  passes,
		matches: matches,
		events:  events,
	}
}

// Like records that actor likes target and reports whether a match now
// exists. The like insert is idempotent; so is the match insert, keyed on
// the canonical (min, max) pair. The three statements deliberately run
// outside a transaction: under concurrent reciprocal likes the unique
// constraint on matches guarantees a single surviving row.
func (svc *SwipeService) Like(ctx context.Context, actorID, targetID int64) (bool, error) {
	if actorID == targetID {
		return false, ErrSelfAction
	}

	count, err := svc.likes.CountSince(ctx, actorID, time.Now().Add(-likeWindow))
	if err != nil {
		logger.Log.Errorw("failed to count recent likes", "err", err)
		return false, err
	}
	if count >= likeQuota {
		logger.Log.Infow("like quota exceeded", "user_id", actorID)
		return false, ErrRateLimited
	}

	if err := svc.likes.Insert(ctx, actorID, targetID); err != nil {
		logger.Log.Errorw("failed to insert like", "err", err)
		return false, err
	}

	reciprocal, err := svc.likes.Exists(ctx, targetID, actorID)
	if err != nil {
		logger.Log.Errorw("failed to check reciprocal like", "err", err)
		return false, err
	}
	if !reciprocal {
		return false, nil
	}

	user1, user2 := actorID, targetID
	if user1 > user2 {
		user1, user2 = user2, user1
	}
	if err := svc.matches.Insert(ctx, user1, user2); err != nil {
		logger.Log.Errorw("failed to insert match", "err", err)
		return false, err
	}

	publishEvent(ctx, svc.events, user1, MatchCreatedEvent{
		Type:    "match.created",
		User1ID: user1,
		User2ID: user2,
	})

	return true, nil
}

// ListOutgoingLikes returns the actor's outgoing likes, newest first.
func (svc *SwipeService) ListOutgoingLikes(ctx context.Context, actorID int64) ([]models.LikeEntry, error) {
	return svc.likes.ListOutgoing(ctx, actorID)
}

// ResetLikes wipes all outgoing likes of the actor. Existing matches are
// untouched: a pair can only ever have one match row regardless of
// like/unlike churn.
func (svc *SwipeService) ResetLikes(ctx context.Context, actorID int64) error {
	return svc.likes.DeleteAllByLiker(ctx, actorID)
}

// Pass records that actor passed on target.
func (svc *SwipeService) Pass(ctx context.Context, actorID, targetID int64) error {
	if actorID == targetID {
		return ErrSelfAction
	}
	return svc.passes.Insert(ctx, actorID, targetID)
}

// ListPasses returns the actor's passes, newest first.
func (svc *SwipeService) ListPasses(ctx context.Context, actorID int64) ([]models.PassEntry, error) {
	return svc.passes.List(ctx, actorID)
}

// UndoPass removes a pass, letting the target reappear in discovery.
// Reports whether a pass was actually removed.
func (svc *SwipeService) UndoPass(ctx context.Context, actorID, targetID int64) (bool, error) {
	return svc.passes.Delete(ctx, actorID, targetID)
}
