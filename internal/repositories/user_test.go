package repositories

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/deepdating/deep-dating-api/internal/models"
)

func userColumns() []string {
	return []string{"id", "name", "email", "password_hash", "gender", "looking_for", "city", "bio", "avatar_url", "created_at"}
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns()).
			AddRow(int64(1), "Alice", "alice@example.com", "$2a$10$hash", "female", "male", "Berlin", nil, nil, time.Now())
		mock.ExpectQuery(`SELECT .+ FROM users WHERE email`).
			WithArgs("alice@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(context.Background(), "alice@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	})

	t.Run("missing email yields nil, not an error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM users WHERE email`).
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns()))

		user, err := repo.GetByEmail(context.Background(), "ghost@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_Browse(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	browseColumns := []string{"id", "name", "avatar_url", "gender", "looking_for", "city", "bio", "created_at"}

	tests := []struct {
		name     string
		city     *string
		gender   *string
		wantArgs []driver.Value
	}{
		{
			name:     "no filters",
			wantArgs: []driver.Value{int64(1), 50},
		},
		{
			name:     "city only",
			city:     strPtr("Berlin"),
			wantArgs: []driver.Value{int64(1), "Berlin", 50},
		},
		{
			name:     "city and gender",
			city:     strPtr("Berlin"),
			gender:   strPtr("female"),
			wantArgs: []driver.Value{int64(1), "Berlin", "female", 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := sqlmock.NewRows(browseColumns).
				AddRow(int64(9), "Maybe", nil, "female", nil, "Berlin", nil, time.Now())
			mock.ExpectQuery(`SELECT .+ FROM users WHERE id <>`).
				WithArgs(tt.wantArgs...).
				WillReturnRows(rows)

			users, err := repo.Browse(context.Background(), 1, tt.city, tt.gender, 50)
			assert.NoError(t, err)
			assert.Len(t, users, 1)
			assert.Equal(t, int64(9), users[0].ID)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Alice", "alice@example.com", "$2a$10$hash", nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.Create(context.Background(), "Alice", "alice@example.com", "$2a$10$hash", nil, nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdateProfile(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	city := "Munich"
	mock.ExpectExec(`UPDATE users`).
		WithArgs(int64(1), nil, nil, nil, "Munich", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProfile(context.Background(), 1, models.UpdateProfileParams{City: &city})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func strPtr(s string) *string { return &s }
