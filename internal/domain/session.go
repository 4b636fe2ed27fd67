package domain

// State identifies the user's position in the conversation flow
type State string

const (
	// StateAnonymous is the initial state for any user never seen before
	StateAnonymous State = "anonymous"
	// StateEnteringName means the next text message is the user's name
	StateEnteringName State = "entering_name"
	// StateReady means the user is registered and idle
	StateReady State = "ready"
	// StateSpelling means a word was served and the next text message is a spelling attempt
	StateSpelling State = "spelling"
)

// Session holds a user's current state plus the word being spelled.
// PendingWord is set only in StateSpelling and cleared on every
// transition out of it.
type Session struct {
	State       State
	PendingWord *Word
}
