package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"spellingbee/internal/controller"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)
	return h.dispatch(c, controller.EventStart)
}

// handleText handles free-text messages: names and spelling attempts
func (h *Handler) handleText(c tele.Context) error {
	// Ignore commands (starting with /)
	if strings.HasPrefix(strings.TrimSpace(c.Text()), "/") {
		return nil
	}
	return h.dispatch(c, controller.EventText)
}

// handlePickWord serves the next training word
func (h *Handler) handlePickWord(c tele.Context) error {
	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}
	return h.dispatch(c, controller.EventPickWord)
}

// handleStats shows the user's progress
func (h *Handler) handleStats(c tele.Context) error {
	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}
	return h.dispatch(c, controller.EventStats)
}

// handleLeaderboard shows the top spellers
func (h *Handler) handleLeaderboard(c tele.Context) error {
	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}
	return h.dispatch(c, controller.EventLeaderboard)
}

// handleCancel resets the session
func (h *Handler) handleCancel(c tele.Context) error {
	return h.dispatch(c, controller.EventCancel)
}
