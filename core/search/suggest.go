package search

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/FocuswithJustin/JuniperHebrew/core/hebrew"
	"github.com/FocuswithJustin/JuniperHebrew/core/verse"
)

// MinSimilarity is the lowest Levenshtein similarity Suggest reports.
const MinSimilarity = 0.5

// Suggestion is a vocabulary word close to a query term.
type Suggestion struct {
	Word       string
	Similarity float32
}

// Suggest returns up to n vocabulary words most similar to term, best first.
// Ties are broken alphabetically.
func Suggest(term string, vocabulary []string, n int) []Suggestion {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || n <= 0 {
		return nil
	}

	var out []Suggestion
	for _, word := range vocabulary {
		sim, err := edlib.StringsSimilarity(term, word, edlib.Levenshtein)
		if err != nil || sim < MinSimilarity {
			continue
		}
		out = append(out, Suggestion{Word: word, Similarity: sim})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Similarity != out[j].Similarity {
			return out[i].Similarity > out[j].Similarity
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Vocabulary returns the distinct transliterated words of books, sorted.
// A nil translit uses hebrew.TransliterateString.
func Vocabulary(books []*verse.Book, translit func(string) string) []string {
	if translit == nil {
		translit = hebrew.TransliterateString
	}
	seen := make(map[string]struct{})
	for _, b := range books {
		for _, v := range b.Verses {
			for _, t := range v.Tokens {
				if w := translit(t.Word); w != "" {
					seen[w] = struct{}{}
				}
			}
		}
	}
	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
