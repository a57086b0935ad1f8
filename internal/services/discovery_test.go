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

func strPtr(s string) *string { return &s }

func TestDiscoveryService_Browse(t *testing.T) {
	me := &models.UserDB{
		ID:         1,
		Name:       "Alice",
		City:       strPtr("Berlin"),
		LookingFor: strPtr("male"),
	}

	tests := []struct {
		name           string
		me             *models.UserDB
		getterErr      error
		cityOverride   *string
		genderOverride *string
		wantCity       *string
		wantGender     *string
		browserErr     error
		wantErr        error
	}{
		{
			name:       "defaults from own profile",
			me:         me,
			wantCity:   strPtr("Berlin"),
			wantGender: strPtr("male"),
		},
		{
			name:           "explicit overrides win",
			me:             me,
			cityOverride:   strPtr("Hamburg"),
			genderOverride: strPtr("female"),
			wantCity:       strPtr("Hamburg"),
			wantGender:     strPtr("female"),
		},
		{
			name:     "profile without city or preference",
			me:       &models.UserDB{ID: 1, Name: "Blank"},
			wantCity: nil,
		},
		{
			name:    "unknown user",
			me:      nil,
			wantErr: services.ErrUserNotFound,
		},
		{
			name:      "getter error",
			getterErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:       "browser error",
			me:         me,
			wantCity:   strPtr("Berlin"),
			wantGender: strPtr("male"),
			browserErr: errors.New("query failed"),
			wantErr:    errors.New("query failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			profiles := services.NewMockProfileGetter(ctrl)
			browser := services.NewMockCandidateBrowser(ctrl)
			svc := services.NewDiscoveryService(profiles, browser)

			profiles.EXPECT().GetByID(gomock.Any(), int64(1)).Return(tt.me, tt.getterErr)

			candidates := []models.UserPublic{{ID: 9, Name: "Maybe"}}
			if tt.me != nil && tt.getterErr == nil {
				browser.EXPECT().
					Browse(gomock.Any(), int64(1), tt.wantCity, tt.wantGender, 50).
					Return(candidates, tt.browserErr)
			}

			result, err := svc.Browse(context.Background(), 1, tt.cityOverride, tt.genderOverride)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, candidates, result.Users)
			assert.Equal(t, tt.wantCity, result.FiltersUsed.City)
			assert.Equal(t, tt.wantGender, result.FiltersUsed.Gender)
		})
	}
}
