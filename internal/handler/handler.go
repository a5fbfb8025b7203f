package handler

import (
	"flashcards/internal/engine"
	"flashcards/internal/middleware"
	"flashcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	sessions    *service.SessionService
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	sessions *service.SessionService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	auth := middleware.AuthMiddleware(h.authService, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/reset", h.handleReset, auth)

	// Text messages (password)
	h.bot.Handle(tele.OnText, h.handleText)

	// Card buttons
	for i := range commandButtons {
		h.bot.Handle(&commandButtons[i], h.handleCommand, auth)
	}

	// Generic callback handler for buttons from older messages
	h.bot.Handle(tele.OnCallback, h.handleCallback, auth)
}

// Button labels per engine command
var commandLabels = map[engine.Command]string{
	engine.CommandPrev:                "⬅️",
	engine.CommandReverse:             "🔄 Flip",
	engine.CommandNext:                "➡️",
	engine.CommandTogglePronunciation: "🔊 Pronunciation",
	engine.CommandToggleDescription:   "📖 Description",
	engine.CommandToggleExample:       "💬 Example",
	engine.CommandToggleTitle:         "🏷 Title",
	engine.CommandToggleHints:         "🔢 Counter",
	engine.CommandToggleZen:           "🧘 Zen",
}

// commandButtons holds one inline button per engine command, in engine.Commands order
var commandButtons = newCommandButtons()

func newCommandButtons() []tele.Btn {
	buttons := make([]tele.Btn, 0, len(engine.Commands))
	for _, cmd := range engine.Commands {
		buttons = append(buttons, tele.Btn{Unique: cmd.String(), Text: commandLabels[cmd]})
	}
	return buttons
}

// cardMarkup returns the keyboard shown under every card
func cardMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, 3)
	for i := 0; i < len(commandButtons); i += 3 {
		end := i + 3
		if end > len(commandButtons) {
			end = len(commandButtons)
		}
		rows = append(rows, markup.Row(commandButtons[i:end]...))
	}
	markup.Inline(rows...)
	return markup
}
