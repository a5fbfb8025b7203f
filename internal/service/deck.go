package service

import (
	"fmt"
	"math/rand"
	"time"

	"flashcards/internal/domain"
	"flashcards/internal/repository"

	"go.uber.org/zap"
)

// DeckService loads decks for the viewers
type DeckService struct {
	decks   repository.DeckRepository
	shuffle bool
	rng     *rand.Rand
	logger  *zap.Logger
}

// NewDeckService creates a new deck service; shuffle randomizes card order on every Load
func NewDeckService(decks repository.DeckRepository, shuffle bool, logger *zap.Logger) *DeckService {
	return &DeckService{
		decks:   decks,
		shuffle: shuffle,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:  logger,
	}
}

// Load fetches and validates a deck, shuffling it when configured.
// The returned order is final, viewers never reorder cards.
func (s *DeckService) Load(name string) (*domain.Deck, error) {
	deck, err := s.fetch(name)
	if err != nil {
		return nil, err
	}

	if s.shuffle {
		s.rng.Shuffle(len(deck.Cards), func(i, j int) {
			deck.Cards[i], deck.Cards[j] = deck.Cards[j], deck.Cards[i]
		})
	}

	s.logger.Info("Deck loaded",
		zap.String("deck", deck.Name),
		zap.Int("cards", len(deck.Cards)),
		zap.Bool("shuffled", s.shuffle),
	)
	return deck, nil
}

// Import copies a deck from the service's repository into dst, keeping card order
func (s *DeckService) Import(name string, dst repository.DeckWriter) (*domain.Deck, error) {
	deck, err := s.fetch(name)
	if err != nil {
		return nil, err
	}

	if err := dst.SaveDeck(deck); err != nil {
		s.logger.Error("Failed to save deck", zap.String("deck", deck.Name), zap.Error(err))
		return nil, fmt.Errorf("failed to save deck %q: %w", deck.Name, err)
	}

	s.logger.Info("Deck imported",
		zap.String("deck", deck.Name),
		zap.Int("cards", len(deck.Cards)),
	)
	return deck, nil
}

func (s *DeckService) fetch(name string) (*domain.Deck, error) {
	deck, err := s.decks.GetDeck(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck %q: %w", deck.Name, err)
	}
	return deck, nil
}
