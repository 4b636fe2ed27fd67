package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"spellingbee/internal/domain"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) UserExists(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) HasName(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SetName(userID int64, name string) error {
	args := m.Called(userID, name)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) RandomUnpassedWord(userID int64) (*domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) SaveWord(spelling, translation string) error {
	args := m.Called(spelling, translation)
	return args.Error(0)
}

func (m *MockWordRepository) AllWords() ([]domain.Word, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) CountWords() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockAttemptRepository is a mock for AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) RecordAttempt(userID int64, wordID int) error {
	args := m.Called(userID, wordID)
	return args.Error(0)
}

func (m *MockAttemptRepository) SetPassed(userID int64, wordID int, passed bool) error {
	args := m.Called(userID, wordID, passed)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetAttempt(userID int64, wordID int) (*domain.Attempt, error) {
	args := m.Called(userID, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attempt), args.Error(1)
}

func (m *MockAttemptRepository) CountPassed(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAttemptRepository) TopUsers(limit int) ([]domain.RankedUser, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankedUser), args.Error(1)
}

// MockLeaderboardCache is a mock for service.LeaderboardCache
type MockLeaderboardCache struct {
	mock.Mock
}

func (m *MockLeaderboardCache) Get(ctx context.Context, limit int) ([]domain.RankedUser, bool) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.RankedUser), args.Bool(1)
}

func (m *MockLeaderboardCache) Set(ctx context.Context, limit int, users []domain.RankedUser) error {
	args := m.Called(limit, users)
	return args.Error(0)
}
