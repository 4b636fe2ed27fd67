package postgres

import (
	"database/sql"

	"spellingbee/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// RandomUnpassedWord returns a uniformly random word the user has not
// passed yet. Words with no attempt row and words with a failed or
// not-attempted row are all eligible. Returns domain.ErrNoWordsLeft
// when every word has been passed.
func (r *WordRepo) RandomUnpassedWord(userID int64) (*domain.Word, error) {
	var w domain.Word
	query := `
		SELECT w.word_id, w.spelling, w.translation
		FROM words w
		LEFT JOIN suggestions s
			ON w.word_id = s.word_id AND s.user_id = $1
		WHERE s.passed IS NULL OR s.passed != 1
		ORDER BY RANDOM()
		LIMIT 1
	`
	err := r.db.QueryRow(query, userID).Scan(&w.WordID, &w.Spelling, &w.Translation)

	if err == sql.ErrNoRows {
		return nil, domain.ErrNoWordsLeft
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// SaveWord inserts a word, ignoring duplicates by spelling
func (r *WordRepo) SaveWord(spelling, translation string) error {
	query := `
		INSERT INTO words (spelling, translation)
		VALUES ($1, $2)
		ON CONFLICT (spelling) DO NOTHING
	`
	_, err := r.db.Exec(query, spelling, translation)
	return err
}

// AllWords returns the full word list
func (r *WordRepo) AllWords() ([]domain.Word, error) {
	query := `SELECT word_id, spelling, translation FROM words ORDER BY word_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.WordID, &w.Spelling, &w.Translation); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// CountWords returns the total number of words in the pool
func (r *WordRepo) CountWords() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&count)
	return count, err
}
