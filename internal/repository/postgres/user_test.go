package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_EnsureUser(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockError     error
		expectedError bool
	}{
		{
			name:          "new user",
			userID:        123,
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "existing user is a no-op",
			userID:        123,
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "database error",
			userID:        456,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := "INSERT INTO users \\(user_id\\)"

			if tt.mockError != nil {
				mock.ExpectExec(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectExec(query).WithArgs(tt.userID).WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err = repo.EnsureUser(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_EnsureUser_Idempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	query := "INSERT INTO users \\(user_id\\)"

	// Second call conflicts and affects zero rows; still no error
	mock.ExpectExec(query).WithArgs(int64(123)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).WithArgs(int64(123)).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.EnsureUser(123))
	assert.NoError(t, repo.EnsureUser(123))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UserExists(t *testing.T) {
	tests := []struct {
		name           string
		userID         int64
		mockRows       *sqlmock.Rows
		expectedExists bool
	}{
		{
			name:           "user exists",
			userID:         123,
			mockRows:       sqlmock.NewRows([]string{"exists"}).AddRow(true),
			expectedExists: true,
		},
		{
			name:           "user does not exist",
			userID:         456,
			mockRows:       sqlmock.NewRows([]string{"exists"}).AddRow(false),
			expectedExists: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			mock.ExpectQuery("SELECT EXISTS").WithArgs(tt.userID).WillReturnRows(tt.mockRows)

			exists, err := repo.UserExists(tt.userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedExists, exists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_HasName(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedHas   bool
		expectedError bool
	}{
		{
			name:        "user with name",
			userID:      123,
			mockRows:    sqlmock.NewRows([]string{"name"}).AddRow("Alex"),
			expectedHas: true,
		},
		{
			name:        "user with null name",
			userID:      456,
			mockRows:    sqlmock.NewRows([]string{"name"}).AddRow(nil),
			expectedHas: false,
		},
		{
			name:        "user with empty name",
			userID:      456,
			mockRows:    sqlmock.NewRows([]string{"name"}).AddRow(""),
			expectedHas: false,
		},
		{
			name:        "user not exists",
			userID:      789,
			mockError:   sql.ErrNoRows,
			expectedHas: false,
		},
		{
			name:          "database error",
			userID:        789,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := "SELECT name FROM users WHERE user_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			has, err := repo.HasName(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedHas, has)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_SetName(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("UPDATE users SET name = \\$2").
		WithArgs(int64(123), "Alex").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetName(123, "Alex"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
