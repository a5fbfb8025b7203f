package testutil

import (
	"time"

	"flashcards/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, authorized bool) *domain.User {
	return &domain.User{
		UserID:     userID,
		Authorized: authorized,
		CreatedAt:  time.Now(),
	}
}

// NewTestCards returns the animals fixture: alpaca, llama, puma
func NewTestCards() []domain.Card {
	return []domain.Card{
		{
			Term:          "alpaca",
			Translation:   "alpaka",
			Description:   "a domesticated mammal especially of Per",
			Pronunciation: "/al-ˈpa-kə/",
			Example:       "The boutique features items made from alpaca fiber..",
		},
		{
			Term:          "llama",
			Translation:   "lama",
			Description:   "wild or domesticated, long-necked, South American mammals related to the camels but smaller and without a hump",
			Pronunciation: "/lla·ma/",
			Example:       "The llama represents the Inca’s sturdy beast of burden.",
		},
		{
			Term:          "puma",
			Translation:   "puma",
			Description:   "",
			Pronunciation: "/pu·ma/",
			Example:       "Adult pumas can sometimes weigh over 200 pounds.",
		},
	}
}

// NewTestDeck returns the animals fixture as a deck
func NewTestDeck() *domain.Deck {
	return &domain.Deck{
		Name:  "animals",
		Cards: NewTestCards(),
	}
}
