// Package engine holds the view state of a flashcard session: the deck with
// its cursor, the row toggles, zen mode and the layout weight heuristic.
// It performs no I/O; front ends dispatch commands and read accessors.
package engine

import "flashcards/internal/domain"

const (
	// EmptyText is shown instead of a term when the deck has no cards
	EmptyText = "EMPTY SET"
	// Hints is the content of the hint bar
	Hints = "  q (quit) | ? (help)  "
)

// Engine combines the card store with the visibility state.
type Engine struct {
	name       string
	store      *Store
	visibility Visibility
}

// New creates an engine over the given cards, order is kept as given
func New(name string, cards []domain.Card) *Engine {
	return &Engine{
		name:       name,
		store:      NewStore(cards),
		visibility: NewVisibility(),
	}
}

// Dispatch applies a single command
func (e *Engine) Dispatch(cmd Command) {
	switch cmd {
	case CommandNext:
		e.store.Next()
	case CommandPrev:
		e.store.Prev()
	case CommandReverse:
		e.visibility.Reverse()
	case CommandToggleZen:
		e.visibility.ToggleZen()
	default:
		if f, ok := cmd.field(); ok {
			e.visibility.Toggle(f)
		}
	}
}

func (e *Engine) Next() { e.Dispatch(CommandNext) }
func (e *Engine) Prev() { e.Dispatch(CommandPrev) }
func (e *Engine) Reverse() { e.Dispatch(CommandReverse) }
func (e *Engine) ToggleTitle() { e.Dispatch(CommandToggleTitle) }
func (e *Engine) ToggleHints() { e.Dispatch(CommandToggleHints) }
func (e *Engine) TogglePronunciation() { e.Dispatch(CommandTogglePronunciation) }
func (e *Engine) ToggleDescription() { e.Dispatch(CommandToggleDescription) }
func (e *Engine) ToggleExample() { e.Dispatch(CommandToggleExample) }
func (e *Engine) ToggleZen() { e.Dispatch(CommandToggleZen) }

// MainText returns the translation when reversed, the term otherwise
func (e *Engine) MainText() string {
	card, ok := e.store.Current()
	if !ok {
		return EmptyText
	}
	if e.visibility.Reversed() {
		return card.Translation
	}
	return card.Term
}

// Title returns the deck name when the title row is shown
func (e *Engine) Title() (string, bool) {
	if !e.visibility.Shown(FieldTitle) {
		return "", false
	}
	return e.name, true
}

// Hints returns the hint bar when it is shown
func (e *Engine) Hints() (string, bool) {
	if !e.visibility.Shown(FieldHints) {
		return "", false
	}
	return Hints, true
}

func (e *Engine) Pronunciation() (string, bool) {
	return e.cardField(FieldPronunciation, func(c domain.Card) string { return c.Pronunciation })
}

func (e *Engine) Description() (string, bool) {
	return e.cardField(FieldDescription, func(c domain.Card) string { return c.Description })
}

func (e *Engine) Example() (string, bool) {
	return e.cardField(FieldExample, func(c domain.Card) string { return c.Example })
}

func (e *Engine) cardField(f Field, get func(domain.Card) string) (string, bool) {
	if !e.visibility.Shown(f) {
		return "", false
	}
	card, ok := e.store.Current()
	if !ok {
		return "", false
	}
	return get(card), true
}

// CountViewWeight returns the spacer balance for the current card, see ViewWeight
func (e *Engine) CountViewWeight(maxWidth, descriptionPrefixLen, examplePrefixLen int) int {
	var card *domain.Card
	if c, ok := e.store.Current(); ok {
		card = &c
	}
	return ViewWeight(e.visibility, card, maxWidth, descriptionPrefixLen, examplePrefixLen)
}

func (e *Engine) CardsLen() int { return e.store.Len() }
func (e *Engine) Cursor() int { return e.store.Cursor() }
func (e *Engine) Zen() bool { return e.visibility.Zen() }
func (e *Engine) Reversed() bool { return e.visibility.Reversed() }
func (e *Engine) Visibility() Visibility { return e.visibility }
