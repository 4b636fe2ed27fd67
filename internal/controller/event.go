package controller

// EventKind tags an inbound event from the transport
type EventKind int

const (
	// EventStart is the /start command
	EventStart EventKind = iota
	// EventText is a free-text message
	EventText
	// EventPickWord asks for the next training word
	EventPickWord
	// EventStats asks for the user's progress counts
	EventStats
	// EventLeaderboard asks for the top-users board
	EventLeaderboard
	// EventCancel resets the session
	EventCancel
)

// Event is a transport-agnostic inbound event
type Event struct {
	UserID int64
	Kind   EventKind
	Text   string
}

// Menu identifies which keyboard the transport should attach
type Menu int

const (
	// MenuNone attaches no keyboard
	MenuNone Menu = iota
	// MenuMain is the pick-a-word / stats / top keyboard
	MenuMain
)

// Reply is what the transport should send back. AudioPath is an opaque
// media handle; empty means text-only.
type Reply struct {
	Text      string
	AudioPath string
	Menu      Menu
	ParseHTML bool
}
