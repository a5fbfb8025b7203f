// Package tui is the terminal front end: it turns key presses into engine
// commands and draws the engine state after each of them.
package tui

import (
	"flashcards/internal/engine"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Model owns the engine for the lifetime of the program.
type Model struct {
	engine   *engine.Engine
	keys     keyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
	logger   *zap.Logger
}

// New creates the terminal model around an engine
func New(e *engine.Engine, logger *zap.Logger) Model {
	h := help.New()
	h.ShowAll = true
	return Model{
		engine: e,
		keys:   newKeyMap(),
		help:   h,
		logger: logger,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			m.logger.Info("Quit requested", zap.Int("cursor", m.engine.Cursor()))
			return m, tea.Quit
		}

		if m.showHelp {
			if key.Matches(msg, m.keys.help, m.keys.closeHelp) {
				m.showHelp = false
			}
			return m, nil
		}

		if key.Matches(msg, m.keys.help) {
			m.showHelp = true
			return m, nil
		}

		if cmd, ok := m.keys.commandFor(msg); ok {
			m.engine.Dispatch(cmd)
			m.logger.Debug("Command dispatched",
				zap.Stringer("command", cmd),
				zap.Int("cursor", m.engine.Cursor()),
				zap.Bool("reversed", m.engine.Reversed()),
				zap.Bool("zen", m.engine.Zen()),
			)
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.showHelp {
		return m.helpView()
	}
	return m.cardView()
}
