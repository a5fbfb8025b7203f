package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDeckNotFound  = errors.New("deck not found")
	ErrEmptyDeckName = errors.New("deck name cannot be empty")
	ErrInvalidCard   = errors.New("invalid card")
)

// Deck is an ordered set of cards with a name.
// Card order is display order.
type Deck struct {
	Name  string
	Cards []Card
}

// Validate checks the deck before it is handed to a viewer
func (d *Deck) Validate() error {
	if d.Name == "" {
		return ErrEmptyDeckName
	}
	for i, card := range d.Cards {
		if card.IsBlank() {
			return fmt.Errorf("%w: card %d has no word and no translation", ErrInvalidCard, i)
		}
	}
	return nil
}
