package testutil

import (
	"time"

	"go.uber.org/zap"

	"spellingbee/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, name string) *domain.User {
	return &domain.User{
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// NewTestWord creates a test word
func NewTestWord(id int, spelling, translation string) *domain.Word {
	return &domain.Word{
		WordID:      id,
		Spelling:    spelling,
		Translation: translation,
	}
}
