package domain

// Word represents a word to spell with its translation
type Word struct {
	WordID      int
	Spelling    string
	Translation string
}

// PassStatus is the tri-state outcome stored per (user, word) pair
type PassStatus int

const (
	NotAttempted PassStatus = 0
	Passed       PassStatus = 1
	Failed       PassStatus = 2
)

// Attempt tracks a user's tries for a single word
type Attempt struct {
	UserID   int64
	WordID   int
	NumTries int
	Passed   PassStatus
}

// Stats is aggregate per-user progress
type Stats struct {
	Passed    int
	Total     int
	Remaining int
}
