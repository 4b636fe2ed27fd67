package domain

import "time"

// User represents a bot user
type User struct {
	UserID    int64
	Name      string
	CreatedAt time.Time
}

// RankedUser is a leaderboard row: a user with their passed-word count
type RankedUser struct {
	UserID int64
	Name   string
	Passed int
}
