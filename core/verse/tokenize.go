package verse

import (
	"strings"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
	"github.com/FocuswithJustin/JuniperHebrew/core/hebrew"
)

var (
	paseq    = string(hebrew.Paseq)
	sofPasuq = string(hebrew.SofPasuq)
	maqaf    = string(hebrew.Maqaf)
)

// Tokenize splits a verse into tokens in source order.
//
// A free-standing paseq joins the trailing space of the previous token. A
// word ending in sof pasuq takes the mark as its trailing space. A word
// containing maqaf is split into sub-tokens joined by the maqaf; a maqaf at
// either end of a word stays in the trailing space of the token before it.
//
// Tokenize always returns usable tokens. A non-nil error wraps one
// MalformedVerseError per mark that had no preceding word and was dropped.
func Tokenize(text string) ([]Token, error) {
	var (
		tokens []Token
		errs   []error
	)
	malformed := func(pos int, mark rune, reason string) {
		errs = append(errs, &errors.MalformedVerseError{Text: text, Mark: mark, Position: pos, Reason: reason})
	}

	for pos, cand := range strings.Fields(text) {
		if cand == paseq {
			if len(tokens) == 0 {
				malformed(pos, hebrew.Paseq, "paseq before the first word")
				continue
			}
			tokens[len(tokens)-1].Space += paseq + " "
			continue
		}

		word, space := cand, " "
		if strings.HasSuffix(word, sofPasuq) {
			word = strings.TrimSuffix(word, sofPasuq)
			space = sofPasuq
			if word == "" {
				if len(tokens) == 0 {
					malformed(pos, hebrew.SofPasuq, "sof pasuq before the first word")
					continue
				}
				tokens[len(tokens)-1].Space = sofPasuq
				continue
			}
		}

		// The separator of an empty part extends the previous token's space.
		parts := strings.Split(word, maqaf)
		dropped := false
		for i, part := range parts {
			sep := maqaf
			if i == len(parts)-1 {
				sep = space
			}
			switch {
			case part != "":
				tokens = append(tokens, NewToken(part, sep))
			case len(tokens) > 0:
				tokens[len(tokens)-1].Space += sep
			case !dropped:
				malformed(pos, hebrew.Maqaf, "maqaf before the first word")
				dropped = true
			}
		}
	}
	return tokens, errors.Join(errs...)
}
