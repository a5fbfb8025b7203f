package handler

import (
	"fmt"
	"strings"

	"flashcards/internal/engine"
)

// renderCard draws the engine state as a chat message.
// The hint row becomes a card counter, chats have no keyboard shortcuts.
func renderCard(e *engine.Engine) string {
	var b strings.Builder

	if title, ok := e.Title(); ok {
		fmt.Fprintf(&b, "📚 %s\n\n", title)
	}

	main := strings.TrimSpace(e.MainText())
	if main == "" {
		main = "…"
	}
	b.WriteString(main)

	if pron, ok := e.Pronunciation(); ok && pron != "" {
		fmt.Fprintf(&b, "\n%s", pron)
	}
	if desc, ok := e.Description(); ok {
		fmt.Fprintf(&b, "\n\nDescription: %s", desc)
	}
	if example, ok := e.Example(); ok {
		fmt.Fprintf(&b, "\n\nExample: %s", example)
	}

	if _, ok := e.Hints(); ok {
		position := "0/0"
		if e.CardsLen() > 0 {
			position = fmt.Sprintf("%d/%d", e.Cursor()+1, e.CardsLen())
		}
		fmt.Fprintf(&b, "\n\n%s", position)
	}

	return b.String()
}
