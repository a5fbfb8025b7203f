package engine

import "flashcards/internal/domain"

// Store holds the ordered cards and a cursor over them.
// The cursor never leaves [0, len) on a non-empty deck; there is no wraparound.
type Store struct {
	cards  []domain.Card
	cursor int
}

// NewStore creates a store positioned on the first card.
// The slice is copied, order is kept as given.
func NewStore(cards []domain.Card) *Store {
	owned := make([]domain.Card, len(cards))
	copy(owned, cards)
	return &Store{cards: owned}
}

// Next moves to the following card, no-op on the last one
func (s *Store) Next() {
	if s.cursor+1 < len(s.cards) {
		s.cursor++
	}
}

// Prev moves to the previous card, no-op on the first one
func (s *Store) Prev() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// Current returns the card under the cursor, false on an empty deck
func (s *Store) Current() (domain.Card, bool) {
	if len(s.cards) == 0 {
		return domain.Card{}, false
	}
	return s.cards[s.cursor], true
}

// Len returns the number of cards
func (s *Store) Len() int {
	return len(s.cards)
}

// Cursor returns the current index
func (s *Store) Cursor() int {
	return s.cursor
}
