// Package verse splits pointed Hebrew verses into word tokens and holds the
// per-verse search state (highlight flags and plain-language match spans).
//
// A Verse is not safe for concurrent searches: its highlight flags are plain
// fields. Callers that share verses between requests search a Clone.
package verse

import (
	"github.com/FocuswithJustin/JuniperHebrew/core/hebrew"
)

// Token is one orthographic word of a verse.
type Token struct {
	// Word is the consonant and niqqud text of the word.
	Word string `json:"word"`

	// Space is the separator that follows the word: a plain space, a maqaf,
	// a sof pasuq, or a space with a fused paseq.
	Space string `json:"space"`

	// Consonantal is Word without niqqud, cantillation or silent modifiers.
	Consonantal string `json:"consonantal"`

	// Strongs is the lexical tag of the word (e.g. "H7225"), if known.
	Strongs string `json:"strongs,omitempty"`

	// Highlighted is set by search and cleared by ResetTokens.
	Highlighted bool `json:"-"`
}

// NewToken builds a token and derives its consonantal form.
func NewToken(word, space string) Token {
	return Token{
		Word:        word,
		Space:       space,
		Consonantal: hebrew.StripNiqqud(word),
	}
}

// Translit returns the transliteration of the word.
func (t Token) Translit() string {
	return hebrew.TransliterateString(t.Word)
}

// TranslitSpace returns the transliteration of the trailing separator.
func (t Token) TranslitSpace() string {
	return hebrew.TransliterateString(t.Space)
}

// Label returns the text shown for the token.
func (t Token) Label() string {
	return t.Word
}

// ResetTokens clears the highlight flag of every token.
func ResetTokens(tokens []Token) {
	for i := range tokens {
		tokens[i].Highlighted = false
	}
}
