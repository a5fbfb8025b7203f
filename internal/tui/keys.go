package tui

import (
	"flashcards/internal/engine"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	quit      key.Binding
	help      key.Binding
	closeHelp key.Binding

	reverse       key.Binding
	next          key.Binding
	prev          key.Binding
	pronunciation key.Binding
	description   key.Binding
	example       key.Binding
	title         key.Binding
	hints         key.Binding
	zen           key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		closeHelp: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close help"),
		),
		reverse: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "reverse card"),
		),
		next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "next card"),
		),
		prev: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p", "previous card"),
		),
		pronunciation: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle show pronunciation"),
		),
		description: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle show description"),
		),
		example: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "toggle show example"),
		),
		title: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle show title"),
		),
		hints: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "toggle show hints"),
		),
		zen: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle zen mode"),
		),
	}
}

// commandFor maps a key press to an engine command
func (k keyMap) commandFor(msg tea.KeyMsg) (engine.Command, bool) {
	switch {
	case key.Matches(msg, k.reverse):
		return engine.CommandReverse, true
	case key.Matches(msg, k.next):
		return engine.CommandNext, true
	case key.Matches(msg, k.prev):
		return engine.CommandPrev, true
	case key.Matches(msg, k.pronunciation):
		return engine.CommandTogglePronunciation, true
	case key.Matches(msg, k.description):
		return engine.CommandToggleDescription, true
	case key.Matches(msg, k.example):
		return engine.CommandToggleExample, true
	case key.Matches(msg, k.title):
		return engine.CommandToggleTitle, true
	case key.Matches(msg, k.hints):
		return engine.CommandToggleHints, true
	case key.Matches(msg, k.zen):
		return engine.CommandToggleZen, true
	}
	return 0, false
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit, k.help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.quit, k.reverse, k.prev, k.next},
		{k.pronunciation, k.description, k.example, k.title, k.hints, k.zen},
		{k.help, k.closeHelp},
	}
}
