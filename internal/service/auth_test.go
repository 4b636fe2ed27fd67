package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"spellingbee/internal/testutil"
)

func TestAuthService_IsRegistered(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		exists        bool
		existsError   error
		hasName       bool
		hasNameError  error
		expected      bool
		expectedError bool
	}{
		{
			name:     "registered user",
			userID:   123,
			exists:   true,
			hasName:  true,
			expected: true,
		},
		{
			name:     "user without name",
			userID:   123,
			exists:   true,
			hasName:  false,
			expected: false,
		},
		{
			name:     "unknown user",
			userID:   456,
			exists:   false,
			expected: false,
		},
		{
			name:          "exists check fails",
			userID:        789,
			existsError:   fmt.Errorf("db error"),
			expectedError: true,
		},
		{
			name:          "name check fails",
			userID:        789,
			exists:        true,
			hasNameError:  fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("UserExists", tt.userID).Return(tt.exists, tt.existsError)
			if tt.existsError == nil && tt.exists {
				mockRepo.On("HasName", tt.userID).Return(tt.hasName, tt.hasNameError)
			}

			service := NewAuthService(mockRepo)

			registered, err := service.IsRegistered(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, registered)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		userName      string
		savedName     string
		expectedError bool
	}{
		{
			name:      "valid name",
			userID:    123,
			userName:  "Alex",
			savedName: "Alex",
		},
		{
			name:      "name is trimmed",
			userID:    123,
			userName:  "  Alex  ",
			savedName: "Alex",
		},
		{
			name:          "empty name",
			userID:        123,
			userName:      "",
			expectedError: true,
		},
		{
			name:          "whitespace-only name",
			userID:        123,
			userName:      "   ",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			if !tt.expectedError {
				mockRepo.On("EnsureUser", tt.userID).Return(nil)
				mockRepo.On("SetName", tt.userID, tt.savedName).Return(nil)
			}

			service := NewAuthService(mockRepo)

			err := service.Register(tt.userID, tt.userName)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_EnsureUser(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("EnsureUser", int64(123)).Return(nil)

	service := NewAuthService(mockRepo)

	assert.NoError(t, service.EnsureUser(123))
	mockRepo.AssertExpectations(t)
}
