package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/deepdating/deep-dating-api/internal/models"
	"github.com/deepdating/deep-dating-api/internal/services"
)

func newProfileService(t *testing.T) (*services.ProfileService, *services.MockProfileGetter, *services.MockProfileWriter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	reader := services.NewMockProfileGetter(ctrl)
	writer := services.NewMockProfileWriter(ctrl)
	return services.NewProfileService(reader, writer), reader, writer
}

func TestProfileService_Get(t *testing.T) {
	t.Run("returns own profile", func(t *testing.T) {
		svc, reader, _ := newProfileService(t)

		want := &models.UserDB{ID: 1, Name: "Alice", Email: "alice@example.com"}
		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(want, nil)

		got, err := svc.Get(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, reader, _ := newProfileService(t)

		reader.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)

		_, err := svc.Get(context.Background(), 2)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestProfileService_Update(t *testing.T) {
	t.Run("partial update passes through", func(t *testing.T) {
		svc, _, writer := newProfileService(t)

		params := models.UpdateProfileParams{City: strPtr("Munich")}
		writer.EXPECT().UpdateProfile(gomock.Any(), int64(1), params).Return(nil)

		assert.NoError(t, svc.Update(context.Background(), 1, params))
	})

	t.Run("bio too long", func(t *testing.T) {
		svc, _, _ := newProfileService(t)

		long := strings.Repeat("x", 501)
		err := svc.Update(context.Background(), 1, models.UpdateProfileParams{Bio: &long})
		assert.ErrorIs(t, err, services.ErrFieldTooLong)
		assert.Contains(t, err.Error(), "bio")
	})

	t.Run("name too long", func(t *testing.T) {
		svc, _, _ := newProfileService(t)

		long := strings.Repeat("x", 81)
		err := svc.Update(context.Background(), 1, models.UpdateProfileParams{Name: &long})
		assert.ErrorIs(t, err, services.ErrFieldTooLong)
	})

	t.Run("multibyte at the cap is accepted", func(t *testing.T) {
		svc, _, writer := newProfileService(t)

		bio := strings.Repeat("ё", 500)
		params := models.UpdateProfileParams{Bio: &bio}
		writer.EXPECT().UpdateProfile(gomock.Any(), int64(1), params).Return(nil)

		assert.NoError(t, svc.Update(context.Background(), 1, params))
	})
}

func TestProfileService_SetAvatarURL(t *testing.T) {
	t.Run("stores path", func(t *testing.T) {
		svc, _, writer := newProfileService(t)

		writer.EXPECT().SetAvatarURL(gomock.Any(), int64(1), "/uploads/avatar_1_1.png").Return(nil)

		assert.NoError(t, svc.SetAvatarURL(context.Background(), 1, "/uploads/avatar_1_1.png"))
	})

	t.Run("empty path rejected", func(t *testing.T) {
		svc, _, _ := newProfileService(t)

		err := svc.SetAvatarURL(context.Background(), 1, "")
		assert.Error(t, err)
	})
}

func TestBlockService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blocks := services.NewMockBlockStore(ctrl)
	svc := services.NewBlockService(blocks)

	t.Run("block", func(t *testing.T) {
		blocks.EXPECT().Insert(gomock.Any(), int64(1), int64(2)).Return(nil)
		assert.NoError(t, svc.Block(context.Background(), 1, 2))
	})

	t.Run("self block rejected", func(t *testing.T) {
		err := svc.Block(context.Background(), 1, 1)
		assert.ErrorIs(t, err, services.ErrSelfAction)
	})

	t.Run("list", func(t *testing.T) {
		want := []models.BlockEntry{{UserID: 2}}
		blocks.EXPECT().List(gomock.Any(), int64(1)).Return(want, nil)

		got, err := svc.ListBlocks(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unblock", func(t *testing.T) {
		blocks.EXPECT().Delete(gomock.Any(), int64(1), int64(2)).Return(true, nil)

		removed, err := svc.Unblock(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.True(t, removed)
	})
}
