package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"spellingbee/internal/dictionary"
	"spellingbee/internal/domain"
	"spellingbee/internal/service"
)

// Reply texts. The transport renders these verbatim.
const (
	msgAskName       = "Welcome to the spelling trainer! What's your name?"
	msgNameSaved     = "Nice to meet you, %s! Pick a word to start training."
	msgMainMenu      = "Pick a word to start training."
	msgCorrect       = "Correct! Well done. Pick the next word whenever you're ready."
	msgIncorrect     = "Not quite. The word was <b>%s</b>. Pick a word to try another one."
	msgPoolDone      = "Congratulations, you have spelled every word! Check /stats for your results."
	msgStats         = "Words passed: %d\nTotal words: %d\nWords left: %d"
	msgCancelled     = "Session reset. Send /start to begin again."
	msgGenericError  = "Something went wrong. Please try again."
	msgUseMenu       = "I didn't get that. Use the menu or send /start."
	msgNoPhonetics   = "transcription unavailable"
	msgNoDefinitions = "definition unavailable"
)

const leaderboardLimit = 10

// Auth is the registration collaborator
type Auth interface {
	EnsureUser(userID int64) error
	IsRegistered(userID int64) (bool, error)
	Register(userID int64, name string) error
}

// Trainer picks the next word
type Trainer interface {
	PickWord(userID int64) (*domain.Word, error)
}

// Progress records attempts and computes stats
type Progress interface {
	SubmitAnswer(userID int64, word *domain.Word, submitted string) (service.Outcome, error)
	Stats(userID int64) (domain.Stats, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.RankedUser, error)
}

// Dictionary provides enrichment for word presentations
type Dictionary interface {
	Lookup(ctx context.Context, word string) (*dictionary.Entry, error)
}

// Audio resolves a pronunciation clip for a word
type Audio interface {
	PathFor(spelling string) (string, bool)
}

// Controller is the per-user conversation state machine. It owns the
// session records; everything durable lives behind the collaborators.
type Controller struct {
	auth     Auth
	trainer  Trainer
	progress Progress
	dict     Dictionary
	audio    Audio
	logger   *zap.Logger

	mu       sync.Mutex
	sessions map[int64]*domain.Session
	locks    map[int64]*sync.Mutex
}

// New creates a controller with empty session state
func New(
	auth Auth,
	trainer Trainer,
	progress Progress,
	dict Dictionary,
	audio Audio,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		auth:     auth,
		trainer:  trainer,
		progress: progress,
		dict:     dict,
		audio:    audio,
		logger:   logger,
		sessions: make(map[int64]*domain.Session),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// Handle processes one inbound event and returns the reply to render.
// Events for the same user are serialized; different users proceed
// concurrently.
func (c *Controller) Handle(ctx context.Context, ev Event) Reply {
	lock := c.userLock(ev.UserID)
	lock.Lock()
	defer lock.Unlock()

	session := c.session(ev.UserID)

	reply, next := c.dispatch(ctx, ev, session)

	c.mu.Lock()
	c.sessions[ev.UserID] = next
	c.mu.Unlock()

	return reply
}

// Session returns a copy of the user's current session state
func (c *Controller) Session(userID int64) domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.sessions[userID]; ok {
		return *s
	}
	return domain.Session{State: domain.StateAnonymous}
}

func (c *Controller) userLock(userID int64) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[userID] = lock
	}
	return lock
}

func (c *Controller) session(userID int64) *domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.sessions[userID]; ok {
		copied := *s
		return &copied
	}
	return &domain.Session{State: domain.StateAnonymous}
}

func (c *Controller) dispatch(ctx context.Context, ev Event, session *domain.Session) (Reply, *domain.Session) {
	switch ev.Kind {
	case EventStart:
		return c.handleStart(ev, session)
	case EventText:
		return c.handleText(ev, session)
	case EventPickWord:
		return c.handlePickWord(ctx, ev, session)
	case EventStats:
		return c.handleStats(ev, session)
	case EventLeaderboard:
		return c.handleLeaderboard(ctx, ev, session)
	case EventCancel:
		return Reply{Text: msgCancelled}, &domain.Session{State: domain.StateAnonymous}
	default:
		return Reply{Text: msgUseMenu}, session
	}
}

func (c *Controller) handleStart(ev Event, session *domain.Session) (Reply, *domain.Session) {
	if err := c.auth.EnsureUser(ev.UserID); err != nil {
		return c.fail(ev, session, err)
	}

	registered, err := c.auth.IsRegistered(ev.UserID)
	if err != nil {
		return c.fail(ev, session, err)
	}

	if !registered {
		return Reply{Text: msgAskName}, &domain.Session{State: domain.StateEnteringName}
	}

	return Reply{Text: msgMainMenu, Menu: MenuMain}, &domain.Session{State: domain.StateReady}
}

func (c *Controller) handleText(ev Event, session *domain.Session) (Reply, *domain.Session) {
	switch session.State {
	case domain.StateEnteringName:
		return c.handleName(ev, session)
	case domain.StateSpelling:
		return c.handleSpelling(ev, session)
	default:
		return Reply{Text: msgUseMenu, Menu: MenuMain}, session
	}
}

func (c *Controller) handleName(ev Event, session *domain.Session) (Reply, *domain.Session) {
	name := strings.TrimSpace(ev.Text)
	if name == "" {
		return Reply{Text: msgAskName}, session
	}

	if err := c.auth.Register(ev.UserID, name); err != nil {
		return c.fail(ev, session, err)
	}

	c.logger.Info("User registered",
		zap.Int64("user_id", ev.UserID),
		zap.String("name", name),
	)

	return Reply{
		Text: fmt.Sprintf(msgNameSaved, name),
		Menu: MenuMain,
	}, &domain.Session{State: domain.StateReady}
}

func (c *Controller) handleSpelling(ev Event, session *domain.Session) (Reply, *domain.Session) {
	word := session.PendingWord
	if word == nil {
		// should not happen; recover to a safe state
		return Reply{Text: msgUseMenu, Menu: MenuMain}, &domain.Session{State: domain.StateReady}
	}

	outcome, err := c.progress.SubmitAnswer(ev.UserID, word, ev.Text)
	if err != nil {
		return c.fail(ev, session, err)
	}

	if outcome == service.Correct {
		c.logger.Info("Word spelled correctly",
			zap.Int64("user_id", ev.UserID),
			zap.Int("word_id", word.WordID),
		)
		return Reply{Text: msgCorrect, Menu: MenuMain}, &domain.Session{State: domain.StateReady}
	}

	return Reply{
		Text:      fmt.Sprintf(msgIncorrect, word.Spelling),
		Menu:      MenuMain,
		ParseHTML: true,
	}, &domain.Session{State: domain.StateReady}
}

func (c *Controller) handlePickWord(ctx context.Context, ev Event, session *domain.Session) (Reply, *domain.Session) {
	if session.State == domain.StateAnonymous || session.State == domain.StateEnteringName {
		return Reply{Text: msgUseMenu}, session
	}

	word, err := c.trainer.PickWord(ev.UserID)
	if errors.Is(err, domain.ErrNoWordsLeft) {
		return Reply{Text: msgPoolDone, Menu: MenuMain}, &domain.Session{State: domain.StateReady}
	}
	if err != nil {
		return c.fail(ev, session, err)
	}

	reply := Reply{Text: c.presentWord(ctx, word)}
	if path, ok := c.audio.PathFor(word.Spelling); ok {
		reply.AudioPath = path
	}

	return reply, &domain.Session{State: domain.StateSpelling, PendingWord: word}
}

func (c *Controller) handleStats(ev Event, session *domain.Session) (Reply, *domain.Session) {
	stats, err := c.progress.Stats(ev.UserID)
	if err != nil {
		return c.fail(ev, session, err)
	}

	return Reply{
		Text: fmt.Sprintf(msgStats, stats.Passed, stats.Total, stats.Remaining),
		Menu: MenuMain,
	}, session
}

func (c *Controller) handleLeaderboard(ctx context.Context, ev Event, session *domain.Session) (Reply, *domain.Session) {
	users, err := c.progress.Leaderboard(ctx, leaderboardLimit)
	if err != nil {
		return c.fail(ev, session, err)
	}

	var b strings.Builder
	b.WriteString("Top spellers:\n")
	for i, u := range users {
		name := u.Name
		if name == "" {
			name = "anonymous"
		}
		fmt.Fprintf(&b, "%d. %s — %d\n", i+1, name, u.Passed)
	}
	if len(users) == 0 {
		b.WriteString("nobody has passed a word yet\n")
	}

	return Reply{Text: b.String(), Menu: MenuMain}, session
}

// presentWord builds the word presentation: translation plus whatever
// enrichment the dictionary can offer. Enrichment failures degrade to
// placeholders and never block the transition.
func (c *Controller) presentWord(ctx context.Context, word *domain.Word) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Spell the word for: %s\n", word.Translation)

	entry, err := c.dict.Lookup(ctx, word.Spelling)
	if err != nil {
		c.logger.Debug("Dictionary lookup failed",
			zap.String("word", word.Spelling),
			zap.Error(err),
		)
		fmt.Fprintf(&b, "Phonetics: %s\n", msgNoPhonetics)
		fmt.Fprintf(&b, "Meaning: %s\n", msgNoDefinitions)
		return b.String()
	}

	if len(entry.Phonetics) > 0 {
		fmt.Fprintf(&b, "Phonetics: %s\n", strings.Join(entry.Phonetics, ", "))
	} else {
		fmt.Fprintf(&b, "Phonetics: %s\n", msgNoPhonetics)
	}

	wrote := false
	for _, m := range entry.Meanings {
		if len(m.Definitions) == 0 {
			continue
		}
		fmt.Fprintf(&b, "Meaning (%s): %s\n", m.PartOfSpeech, m.Definitions[0].Text)
		wrote = true
		break
	}
	if !wrote {
		fmt.Fprintf(&b, "Meaning: %s\n", msgNoDefinitions)
	}

	return b.String()
}

// fail absorbs a collaborator error: log it, answer generically, keep
// the session where it was.
func (c *Controller) fail(ev Event, session *domain.Session, err error) (Reply, *domain.Session) {
	c.logger.Error("Handler failed",
		zap.Int64("user_id", ev.UserID),
		zap.String("state", string(session.State)),
		zap.Error(err),
	)
	return Reply{Text: msgGenericError}, session
}
