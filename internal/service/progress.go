package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"spellingbee/internal/domain"
	"spellingbee/internal/repository"
)

// Outcome is the result of a spelling submission
type Outcome int

const (
	Incorrect Outcome = iota
	Correct
)

// LeaderboardCache is an optional read-through cache for the top-users
// board. Misses and cache errors fall back to the store.
type LeaderboardCache interface {
	Get(ctx context.Context, limit int) ([]domain.RankedUser, bool)
	Set(ctx context.Context, limit int, users []domain.RankedUser) error
}

// ProgressService records attempts and computes aggregate progress
type ProgressService struct {
	attemptRepo repository.AttemptRepository
	wordRepo    repository.WordRepository
	cache       LeaderboardCache // nil disables caching
	logger      *zap.Logger
}

// NewProgressService creates a new progress service
func NewProgressService(
	attemptRepo repository.AttemptRepository,
	wordRepo repository.WordRepository,
	cache LeaderboardCache,
	logger *zap.Logger,
) *ProgressService {
	return &ProgressService{
		attemptRepo: attemptRepo,
		wordRepo:    wordRepo,
		cache:       cache,
		logger:      logger,
	}
}

// SubmitAnswer records one attempt and evaluates the submission.
// The attempt is counted exactly once, whatever the outcome.
// Matching is case-insensitive with surrounding whitespace trimmed.
func (s *ProgressService) SubmitAnswer(userID int64, word *domain.Word, submitted string) (Outcome, error) {
	if err := s.attemptRepo.RecordAttempt(userID, word.WordID); err != nil {
		return Incorrect, err
	}

	if !spellingsEqual(submitted, word.Spelling) {
		// mark failed; never downgrades an already-passed row
		if err := s.attemptRepo.SetPassed(userID, word.WordID, false); err != nil {
			return Incorrect, err
		}
		return Incorrect, nil
	}

	if err := s.attemptRepo.SetPassed(userID, word.WordID, true); err != nil {
		return Correct, err
	}
	return Correct, nil
}

// Stats returns passed/total/remaining counts for the user
func (s *ProgressService) Stats(userID int64) (domain.Stats, error) {
	passed, err := s.attemptRepo.CountPassed(userID)
	if err != nil {
		return domain.Stats{}, err
	}

	total, err := s.wordRepo.CountWords()
	if err != nil {
		return domain.Stats{}, err
	}

	return domain.Stats{
		Passed:    passed,
		Total:     total,
		Remaining: total - passed,
	}, nil
}

// Leaderboard returns the top users by passed-word count. Served from
// the cache when one is configured; a stale read within the cache TTL
// is acceptable.
func (s *ProgressService) Leaderboard(ctx context.Context, limit int) ([]domain.RankedUser, error) {
	if s.cache != nil {
		if users, ok := s.cache.Get(ctx, limit); ok {
			return users, nil
		}
	}

	users, err := s.attemptRepo.TopUsers(limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, limit, users); err != nil {
			s.logger.Warn("Failed to cache leaderboard", zap.Error(err))
		}
	}

	return users, nil
}

// RefreshLeaderboard recomputes the board from the store and rewrites
// the cache, bypassing any cached copy. No-op without a cache.
func (s *ProgressService) RefreshLeaderboard(ctx context.Context, limit int) error {
	if s.cache == nil {
		return nil
	}

	users, err := s.attemptRepo.TopUsers(limit)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, limit, users)
}

func spellingsEqual(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}
