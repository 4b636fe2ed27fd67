package service

import (
	"spellingbee/internal/domain"
	"spellingbee/internal/repository"
)

// TrainerService picks the next word to train.
// Selection is uniform among words the user has not passed; there is
// no weighting by tries or recency.
type TrainerService struct {
	wordRepo repository.WordRepository
}

// NewTrainerService creates a new trainer service
func NewTrainerService(wordRepo repository.WordRepository) *TrainerService {
	return &TrainerService{wordRepo: wordRepo}
}

// PickWord returns a random unpassed word for the user.
// Returns domain.ErrNoWordsLeft when the pool is exhausted.
func (s *TrainerService) PickWord(userID int64) (*domain.Word, error) {
	return s.wordRepo.RandomUnpassedWord(userID)
}
