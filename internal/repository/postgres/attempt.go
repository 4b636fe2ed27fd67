package postgres

import (
	"database/sql"

	"spellingbee/internal/domain"
)

// AttemptRepo implements repository.AttemptRepository
type AttemptRepo struct {
	db *sql.DB
}

// NewAttemptRepo creates a new attempt repository
func NewAttemptRepo(db *sql.DB) *AttemptRepo {
	return &AttemptRepo{db: db}
}

// RecordAttempt upserts the attempt row and increments its try counter.
// A single statement, so concurrent submissions for the same (user, word)
// cannot double-count or create duplicate rows.
func (r *AttemptRepo) RecordAttempt(userID int64, wordID int) error {
	query := `
		INSERT INTO suggestions (word_id, user_id, num_tries)
		VALUES ($1, $2, 1)
		ON CONFLICT (word_id, user_id)
		DO UPDATE SET num_tries = suggestions.num_tries + 1
	`
	_, err := r.db.Exec(query, wordID, userID)
	return err
}

// SetPassed updates the pass flag. Passed is one-way: marking a word
// failed never downgrades a row that was already passed.
func (r *AttemptRepo) SetPassed(userID int64, wordID int, passed bool) error {
	if passed {
		query := `
			UPDATE suggestions SET passed = 1
			WHERE word_id = $1 AND user_id = $2
		`
		_, err := r.db.Exec(query, wordID, userID)
		return err
	}

	query := `
		UPDATE suggestions SET passed = 2
		WHERE word_id = $1 AND user_id = $2 AND passed != 1
	`
	_, err := r.db.Exec(query, wordID, userID)
	return err
}

// GetAttempt returns the attempt row, or nil if the pair was never attempted
func (r *AttemptRepo) GetAttempt(userID int64, wordID int) (*domain.Attempt, error) {
	var a domain.Attempt
	query := `
		SELECT word_id, user_id, num_tries, passed
		FROM suggestions
		WHERE word_id = $1 AND user_id = $2
	`
	err := r.db.QueryRow(query, wordID, userID).Scan(&a.WordID, &a.UserID, &a.NumTries, &a.Passed)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// CountPassed returns how many words the user has passed
func (r *AttemptRepo) CountPassed(userID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM suggestions WHERE user_id = $1 AND passed = 1`
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// TopUsers returns users ordered by passed-word count descending.
// Ties break by registration order so the board is stable.
func (r *AttemptRepo) TopUsers(limit int) ([]domain.RankedUser, error) {
	query := `
		SELECT u.user_id, COALESCE(u.name, ''), COUNT(s.word_id) FILTER (WHERE s.passed = 1) AS passed
		FROM users u
		LEFT JOIN suggestions s ON s.user_id = u.user_id
		GROUP BY u.user_id, u.name, u.created_at
		ORDER BY passed DESC, u.created_at ASC
		LIMIT $1
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.RankedUser
	for rows.Next() {
		var u domain.RankedUser
		if err := rows.Scan(&u.UserID, &u.Name, &u.Passed); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
