package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/deepdating/deep-dating-api/internal/models"
	"github.com/deepdating/deep-dating-api/internal/services"
)

func newSwipeService(t *testing.T) (*services.SwipeService, *services.MockLikeStore, *services.MockPassStore, *services.MockMatchWriter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	likes := services.NewMockLikeStore(ctrl)
	passes := services.NewMockPassStore(ctrl)
	matches := services.NewMockMatchWriter(ctrl)
	svc := services.NewSwipeService(likes, passes, matches, nil)
	return svc, likes, passes, matches
}

func TestSwipeService_Like(t *testing.T) {
	tests := []struct {
		name       string
		actorID    int64
		targetID   int64
		recent     int64
		countErr   error
		insertErr  error
		reciprocal bool
		existsErr  error
		matchErr   error
		wantMatch  bool
		wantErr    error
	}{
		{
			name:     "like without reciprocation",
			actorID:  1,
			targetID: 2,
			recent:   0,
		},
		{
			name:       "reciprocal like creates match",
			actorID:    5,
			targetID:   3,
			recent:     10,
			reciprocal: true,
			wantMatch:  true,
		},
		{
			name:     "self like rejected",
			actorID:  4,
			targetID: 4,
			wantErr:  services.ErrSelfAction,
		},
		{
			name:     "quota exhausted",
			actorID:  1,
			targetID: 2,
			recent:   30,
			wantErr:  services.ErrRateLimited,
		},
		{
			name:     "count error",
			actorID:  1,
			targetID: 2,
			countErr: errors.New("db error"),
			wantErr:  errors.New("db error"),
		},
		{
			name:      "insert error",
			actorID:   1,
			targetID:  2,
			insertErr: errors.New("insert failed"),
			wantErr:   errors.New("insert failed"),
		},
		{
			name:      "reciprocal check error",
			actorID:   1,
			targetID:  2,
			existsErr: errors.New("exists failed"),
			wantErr:   errors.New("exists failed"),
		},
		{
			name:       "match insert error",
			actorID:    1,
			targetID:   2,
			reciprocal: true,
			matchErr:   errors.New("match failed"),
			wantErr:    errors.New("match failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, likes, _, matches := newSwipeService(t)

			if tt.actorID != tt.targetID {
				likes.EXPECT().
					CountSince(gomock.Any(), tt.actorID, gomock.Any()).
					Return(tt.recent, tt.countErr)
			}
			if tt.countErr == nil && tt.recent < 30 && tt.actorID != tt.targetID {
				likes.EXPECT().
					Insert(gomock.Any(), tt.actorID, tt.targetID).
					Return(tt.insertErr)
				if tt.insertErr == nil {
					likes.EXPECT().
						Exists(gomock.Any(), tt.targetID, tt.actorID).
						Return(tt.reciprocal, tt.existsErr)
				}
				if tt.insertErr == nil && tt.existsErr == nil && tt.reciprocal {
					lo, hi := tt.actorID, tt.targetID
					if lo > hi {
						lo, hi = hi, lo
					}
					matches.EXPECT().
						Insert(gomock.Any(), lo, hi).
						Return(tt.matchErr)
				}
			}

			matched, err := svc.Like(context.Background(), tt.actorID, tt.targetID)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.False(t, matched)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMatch, matched)
			}
		})
	}
}

func TestSwipeService_Like_CanonicalOrder(t *testing.T) {
	// The higher id liking the lower id must still produce the (min, max) pair.
	svc, likes, _, matches := newSwipeService(t)

	likes.EXPECT().CountSince(gomock.Any(), int64(9), gomock.Any()).Return(int64(0), nil)
	likes.EXPECT().Insert(gomock.Any(), int64(9), int64(2)).Return(nil)
	likes.EXPECT().Exists(gomock.Any(), int64(2), int64(9)).Return(true, nil)
	matches.EXPECT().Insert(gomock.Any(), int64(2), int64(9)).Return(nil)

	matched, err := svc.Like(context.Background(), 9, 2)
	assert.NoError(t, err)
	assert.True(t, matched)
}

func TestSwipeService_ListOutgoingLikes(t *testing.T) {
	svc, likes, _, _ := newSwipeService(t)

	want := []models.LikeEntry{{UserID: 2}, {UserID: 3}}
	likes.EXPECT().ListOutgoing(gomock.Any(), int64(1)).Return(want, nil)

	got, err := svc.ListOutgoingLikes(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSwipeService_ResetLikes(t *testing.T) {
	svc, likes, _, _ := newSwipeService(t)

	likes.EXPECT().DeleteAllByLiker(gomock.Any(), int64(1)).Return(nil)

	assert.NoError(t, svc.ResetLikes(context.Background(), 1))
}

func TestSwipeService_Pass(t *testing.T) {
	t.Run("records pass", func(t *testing.T) {
		svc, _, passes, _ := newSwipeService(t)
		passes.EXPECT().Insert(gomock.Any(), int64(1), int64(2)).Return(nil)
		assert.NoError(t, svc.Pass(context.Background(), 1, 2))
	})

	t.Run("self pass rejected", func(t *testing.T) {
		svc, _, _, _ := newSwipeService(t)
		err := svc.Pass(context.Background(), 3, 3)
		assert.ErrorIs(t, err, services.ErrSelfAction)
	})
}

func TestSwipeService_UndoPass(t *testing.T) {
	svc, _, passes, _ := newSwipeService(t)

	passes.EXPECT().Delete(gomock.Any(), int64(1), int64(2)).Return(true, nil)

	removed, err := svc.UndoPass(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.True(t, removed)
}
