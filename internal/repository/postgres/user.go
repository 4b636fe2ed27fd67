package postgres

import (
	"database/sql"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUser creates the user row if it doesn't exist.
// Safe to call on every inbound event.
func (r *UserRepo) EnsureUser(userID int64) error {
	query := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// UserExists reports whether a user row exists
func (r *UserRepo) UserExists(userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`
	err := r.db.QueryRow(query, userID).Scan(&exists)
	return exists, err
}

// HasName reports whether the user has completed registration
func (r *UserRepo) HasName(userID int64) (bool, error) {
	var name sql.NullString
	query := `SELECT name FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&name)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return name.Valid && name.String != "", nil
}

// SetName stores the user's display name
func (r *UserRepo) SetName(userID int64, name string) error {
	query := `UPDATE users SET name = $2 WHERE user_id = $1`
	_, err := r.db.Exec(query, userID, name)
	return err
}
