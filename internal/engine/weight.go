package engine

import (
	"unicode/utf8"

	"flashcards/internal/domain"
)

// ViewWeight balances the spacer rows around the main term.
//
// The title sits above the term and counts -1, the hint bar sits below and
// counts +1. Description and example count 1 row, or 2 rows once prefix plus
// text is wider than maxWidth. Hidden rows count nothing, and so does every
// card row when card is nil. Lengths are in runes.
func ViewWeight(v Visibility, card *domain.Card, maxWidth, descriptionPrefixLen, examplePrefixLen int) int {
	weight := 0
	if v.Shown(FieldTitle) {
		weight--
	}
	if v.Shown(FieldHints) {
		weight++
	}
	if card == nil {
		return weight
	}
	if v.Shown(FieldDescription) {
		weight += wrappedRows(card.Description, descriptionPrefixLen, maxWidth)
	}
	if v.Shown(FieldExample) {
		weight += wrappedRows(card.Example, examplePrefixLen, maxWidth)
	}
	return weight
}

func wrappedRows(text string, prefixLen, maxWidth int) int {
	if prefixLen+utf8.RuneCountInString(text) <= maxWidth {
		return 1
	}
	return 2
}
