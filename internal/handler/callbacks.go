package handler

import (
	"strings"
	"unicode"

	"flashcards/internal/engine"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit(). An unchanged message (e.g. "next"
// on the last card) is only acknowledged; other errors are returned so the
// caller can send a new message.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Card unchanged, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		return c.Respond()
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCommand handles presses of the card buttons
func (h *Handler) handleCommand(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}
	return h.dispatch(c, cleanCallbackData(callback.Unique))
}

// handleCallback handles callbacks that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	name := cleanCallbackData(callback.Unique)
	if name == "" {
		name = cleanCallbackData(callback.Data)
	}
	return h.dispatch(c, name)
}

// dispatch runs one engine command for the sender and redraws the card in place
func (h *Handler) dispatch(c tele.Context, name string) error {
	userID := c.Sender().ID

	cmd, err := engine.ParseCommand(name)
	if err != nil {
		h.logger.Warn("Unhandled callback",
			zap.String("data", name),
			zap.Int64("user_id", userID),
		)
		return c.Respond()
	}

	session, err := h.sessions.Get(userID)
	if err != nil {
		h.logger.Error("Failed to get session", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgError})
	}

	var text string
	session.Do(func(e *engine.Engine) {
		e.Dispatch(cmd)
		text = renderCard(e)
	})

	h.logger.Debug("Command dispatched",
		zap.Stringer("command", cmd),
		zap.Int64("user_id", userID),
	)

	// Sending a markup encodes its buttons in place, so each request gets a fresh one.
	if err := c.Edit(text, cardMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, cardMarkup())
	}
	return c.Respond()
}
