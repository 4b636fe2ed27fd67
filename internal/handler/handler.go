package handler

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"spellingbee/internal/controller"
)

// Handler adapts telebot updates to controller events and renders the
// controller's replies. All conversation state lives in the controller.
type Handler struct {
	bot    *tele.Bot
	ctrl   *controller.Controller
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, ctrl *controller.Controller, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		ctrl:   ctrl,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/stats", h.handleStats)
	h.bot.Handle("/top", h.handleLeaderboard)
	h.bot.Handle("/cancel", h.handleCancel)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnPickWord, h.handlePickWord)
	h.bot.Handle(&btnStats, h.handleStats)
	h.bot.Handle(&btnTop, h.handleLeaderboard)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

func (h *Handler) dispatch(c tele.Context, kind controller.EventKind) error {
	reply := h.ctrl.Handle(context.Background(), controller.Event{
		UserID: c.Sender().ID,
		Kind:   kind,
		Text:   c.Text(),
	})
	return h.send(c, reply)
}

// send renders a controller reply through telebot
func (h *Handler) send(c tele.Context, reply controller.Reply) error {
	var opts []interface{}
	if reply.Menu == controller.MenuMain {
		opts = append(opts, mainMenuMarkup())
	}
	if reply.ParseHTML {
		opts = append(opts, tele.ModeHTML)
	}

	if reply.AudioPath != "" {
		voice := &tele.Voice{
			File:    tele.FromDisk(reply.AudioPath),
			Caption: reply.Text,
		}
		return c.Send(voice, opts...)
	}

	return c.Send(reply.Text, opts...)
}

// Inline keyboard buttons
var (
	btnPickWord = tele.Btn{
		Unique: "pick_word",
		Text:   "🐝 Pick a word",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 My stats",
	}
	btnTop = tele.Btn{
		Unique: "top",
		Text:   "🏆 Top spellers",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnPickWord),
		menu.Row(btnStats, btnTop),
	)
	return menu
}
