package domain

// Card is a single vocabulary entry.
// Tags keep the external deck shape: word, translated, explanation, pronunciation, sentence.
type Card struct {
	Term          string `json:"word" yaml:"word"`
	Translation   string `json:"translated" yaml:"translated"`
	Description   string `json:"explanation" yaml:"explanation"`
	Pronunciation string `json:"pronunciation" yaml:"pronunciation"`
	Example       string `json:"sentence" yaml:"sentence"`
}

// IsBlank reports whether the card has neither side to show
func (c Card) IsBlank() bool {
	return c.Term == "" && c.Translation == ""
}
