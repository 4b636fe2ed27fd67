package domain

import "errors"

var (
	// ErrNoWordsLeft means the user has passed every available word
	ErrNoWordsLeft = errors.New("no unpassed words left")
	// ErrUserNotFound means no user row exists for the given id
	ErrUserNotFound = errors.New("user not found")
)
