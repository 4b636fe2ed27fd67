package repository

import (
	"spellingbee/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUser(userID int64) error
	UserExists(userID int64) (bool, error)
	HasName(userID int64) (bool, error)
	SetName(userID int64, name string) error
}

// WordRepository defines word data operations
type WordRepository interface {
	RandomUnpassedWord(userID int64) (*domain.Word, error)
	SaveWord(spelling, translation string) error
	AllWords() ([]domain.Word, error)
	CountWords() (int, error)
}

// AttemptRepository defines per-(user, word) attempt tracking
type AttemptRepository interface {
	RecordAttempt(userID int64, wordID int) error
	SetPassed(userID int64, wordID int, passed bool) error
	GetAttempt(userID int64, wordID int) (*domain.Attempt, error)
	CountPassed(userID int64) (int, error)
	TopUsers(limit int) ([]domain.RankedUser, error)
}
