package engine

import (
	"testing"

	"flashcards/internal/domain"
	"flashcards/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestStore_Navigation(t *testing.T) {
	tests := []struct {
		name           string
		moves          []func(*Store)
		expectedCursor int
	}{
		{
			name:           "starts at first card",
			expectedCursor: 0,
		},
		{
			name:           "next moves forward",
			moves:          []func(*Store){(*Store).Next},
			expectedCursor: 1,
		},
		{
			name:           "prev at first card is a no-op",
			moves:          []func(*Store){(*Store).Prev, (*Store).Prev},
			expectedCursor: 0,
		},
		{
			name:           "next at last card is a no-op",
			moves:          []func(*Store){(*Store).Next, (*Store).Next, (*Store).Next, (*Store).Next},
			expectedCursor: 2,
		},
		{
			name:           "next then prev round-trips",
			moves:          []func(*Store){(*Store).Next, (*Store).Next, (*Store).Prev},
			expectedCursor: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(testutil.NewTestCards())
			for _, move := range tt.moves {
				move(store)
			}
			assert.Equal(t, tt.expectedCursor, store.Cursor())

			card, ok := store.Current()
			assert.True(t, ok)
			assert.Equal(t, testutil.NewTestCards()[tt.expectedCursor], card)
		})
	}
}

func TestStore_RoundTripFromEveryInteriorIndex(t *testing.T) {
	cards := testutil.NewTestCards()
	for start := 1; start < len(cards)-1; start++ {
		store := NewStore(cards)
		for i := 0; i < start; i++ {
			store.Next()
		}

		store.Next()
		store.Prev()
		assert.Equal(t, start, store.Cursor())

		store.Prev()
		store.Next()
		assert.Equal(t, start, store.Cursor())
	}
}

func TestStore_Empty(t *testing.T) {
	store := NewStore(nil)

	store.Next()
	store.Prev()

	_, ok := store.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 0, store.Cursor())
}

func TestStore_CopiesCards(t *testing.T) {
	cards := []domain.Card{{Term: "alpaca"}}
	store := NewStore(cards)

	cards[0].Term = "changed"

	card, ok := store.Current()
	assert.True(t, ok)
	assert.Equal(t, "alpaca", card.Term)
}
