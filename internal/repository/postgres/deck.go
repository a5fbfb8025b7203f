package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"flashcards/internal/domain"
)

// DeckRepo implements repository.DeckRepository and repository.DeckWriter
type DeckRepo struct {
	db *sql.DB
}

// NewDeckRepo creates a new deck repository
func NewDeckRepo(db *sql.DB) *DeckRepo {
	return &DeckRepo{db: db}
}

// GetDeck returns the named deck with cards in stored order
func (r *DeckRepo) GetDeck(name string) (*domain.Deck, error) {
	var deckID int64
	err := r.db.QueryRow(`SELECT id FROM decks WHERE name = $1`, name).Scan(&deckID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", domain.ErrDeckNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	query := `
		SELECT word, translated, explanation, pronunciation, sentence
		FROM cards
		WHERE deck_id = $1
		ORDER BY position
	`
	rows, err := r.db.Query(query, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deck := &domain.Deck{Name: name}
	for rows.Next() {
		var c domain.Card
		if err := rows.Scan(&c.Term, &c.Translation, &c.Description, &c.Pronunciation, &c.Example); err != nil {
			return nil, err
		}
		deck.Cards = append(deck.Cards, c)
	}

	return deck, rows.Err()
}

// SaveDeck creates the deck or replaces all of its cards
func (r *DeckRepo) SaveDeck(deck *domain.Deck) (err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var deckID int64
	err = tx.QueryRow(`
		INSERT INTO decks (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, deck.Name).Scan(&deckID)
	if err != nil {
		return fmt.Errorf("failed to upsert deck: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM cards WHERE deck_id = $1`, deckID); err != nil {
		return fmt.Errorf("failed to clear cards: %w", err)
	}

	query := `
		INSERT INTO cards (deck_id, position, word, translated, explanation, pronunciation, sentence)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i, c := range deck.Cards {
		if _, err = tx.Exec(query, deckID, i, c.Term, c.Translation, c.Description, c.Pronunciation, c.Example); err != nil {
			return fmt.Errorf("failed to insert card %d: %w", i, err)
		}
	}

	return tx.Commit()
}
