package hebrew

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares source text for clumping. It removes zero-width joiners,
// which some editions scatter between marks, and applies canonical
// decomposition so that presentation forms such as U+FB2A (shin with shin
// dot) become a base consonant followed by its marks.
func Normalize(text string) string {
	if strings.ContainsRune(text, zeroWidthJoiner) {
		text = strings.ReplaceAll(text, string(zeroWidthJoiner), "")
	}
	return norm.NFD.String(text)
}

// StripCantillation removes cantillation marks and meteg, leaving consonants,
// niqqud and punctuation.
func StripCantillation(text string) string {
	return strings.Map(func(r rune) rune {
		if r == Meteg || Classify(r).Category == Cantillation {
			return -1
		}
		return r
	}, text)
}

// StripNiqqud removes every mark (niqqud, cantillation and silent modifiers),
// leaving the consonantal skeleton, punctuation and pass-through text.
func StripNiqqud(text string) string {
	return strings.Map(func(r rune) rune {
		if Classify(r).Category.IsMark() {
			return -1
		}
		return r
	}, text)
}
