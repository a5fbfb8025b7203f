package repository

import (
	"flashcards/internal/domain"
)

// UserRepository defines bot user operations
type UserRepository interface {
	// EnsureUser returns the user, registering an unauthorized one if missing
	EnsureUser(userID int64) (*domain.User, error)
	AuthorizeUser(userID int64) error
}

// DeckRepository loads decks
type DeckRepository interface {
	// GetDeck returns domain.ErrDeckNotFound when no deck has the name
	GetDeck(name string) (*domain.Deck, error)
}

// DeckWriter stores decks
type DeckWriter interface {
	SaveDeck(deck *domain.Deck) error
}
