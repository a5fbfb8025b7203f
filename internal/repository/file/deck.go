// Package file loads decks from JSON or YAML files holding an ordered list of cards.
package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"flashcards/internal/domain"

	"gopkg.in/yaml.v3"
)

// DeckFile implements repository.DeckRepository over a single file
type DeckFile struct {
	path string
}

// NewDeckFile creates a deck repository reading path
func NewDeckFile(path string) *DeckFile {
	return &DeckFile{path: path}
}

// GetDeck reads the file; the deck is named after the file when name is empty
func (f *DeckFile) GetDeck(name string) (*domain.Deck, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDeckNotFound, f.path)
		}
		return nil, err
	}

	cards, err := decodeCards(data, filepath.Ext(f.path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.path, err)
	}

	if name == "" {
		name = DeckName(f.path)
	}
	return &domain.Deck{Name: name, Cards: cards}, nil
}

// DeckName derives a deck name from a file path: "decks/set_1.json" -> "set_1"
func DeckName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func decodeCards(data []byte, ext string) ([]domain.Card, error) {
	var cards []domain.Card
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cards); err != nil {
			return nil, err
		}
	case ".json", "":
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&cards); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported deck format %q", ext)
	}
	return cards, nil
}
