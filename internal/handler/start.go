package handler

import (
	"strings"

	"flashcards/internal/engine"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgError         = "Something went wrong. Please try again later."
	msgAskPassword   = "Hi! Send the password to open the deck."
	msgWrongPassword = "Wrong password."
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgError)
	}
	if !authorized {
		return c.Send(msgAskPassword)
	}

	return h.sendCard(c)
}

// handleReset starts the deck over from the first card
func (h *Handler) handleReset(c tele.Context) error {
	h.sessions.Reset(c.Sender().ID)
	return h.sendCard(c)
}

// handleText treats text from unauthorized users as a password attempt
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgError)
	}
	if authorized {
		return h.sendCard(c)
	}

	ok, err := h.authService.Login(userID, text)
	if err != nil {
		h.logger.Error("Failed to authorize user", zap.Error(err))
		return c.Send(msgError)
	}
	if !ok {
		h.logger.Info("Wrong password", zap.Int64("user_id", userID))
		return c.Send(msgWrongPassword)
	}

	h.logger.Info("User authorized", zap.Int64("user_id", userID))
	return h.sendCard(c)
}

// sendCard sends the user's current card as a new message
func (h *Handler) sendCard(c tele.Context) error {
	session, err := h.sessions.Get(c.Sender().ID)
	if err != nil {
		h.logger.Error("Failed to start session", zap.Error(err))
		return c.Send(msgError)
	}

	var text string
	session.Do(func(e *engine.Engine) { text = renderCard(e) })
	return c.Send(text, cardMarkup())
}
