package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"spellingbee/internal/domain"
	"spellingbee/internal/testutil"
)

func TestTrainerService_PickWord(t *testing.T) {
	testWord := testutil.NewTestWord(1, "cat", "кот")

	tests := []struct {
		name          string
		userID        int64
		mockReturn    *domain.Word
		mockError     error
		expectedWord  *domain.Word
		expectedError error
	}{
		{
			name:         "word found",
			userID:       123,
			mockReturn:   testWord,
			expectedWord: testWord,
		},
		{
			name:          "pool exhausted",
			userID:        456,
			mockError:     domain.ErrNoWordsLeft,
			expectedError: domain.ErrNoWordsLeft,
		},
		{
			name:          "database error",
			userID:        789,
			mockError:     fmt.Errorf("db error"),
			expectedError: fmt.Errorf("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("RandomUnpassedWord", tt.userID).Return(tt.mockReturn, tt.mockError)

			service := NewTrainerService(mockRepo)

			word, err := service.PickWord(tt.userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if tt.expectedError == domain.ErrNoWordsLeft {
					assert.ErrorIs(t, err, domain.ErrNoWordsLeft)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedWord, word)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
