package middleware

import (
	"flashcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgError        = "Something went wrong. Please try again later."
	msgUnauthorized = "Send the password first."
)

// AuthMiddleware lets only authorized users through
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware",
					zap.Error(err),
					zap.Int64("user_id", userID),
				)
				return reply(c, msgError)
			}

			if !authorized {
				logger.Debug("Rejected unauthorized user", zap.Int64("user_id", userID))
				return reply(c, msgUnauthorized)
			}

			return next(c)
		}
	}
}

// reply answers a button press with an alert and anything else with a message
func reply(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}
