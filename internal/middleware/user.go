package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"spellingbee/internal/service"
)

// EnsureUser creates the user row before any handler runs, so every
// downstream operation can assume the user exists.
func EnsureUser(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if err := authService.EnsureUser(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send("Something went wrong. Please try again.")
			}

			return next(c)
		}
	}
}
