package verse

import (
	"sort"
	"strings"

	"github.com/FocuswithJustin/JuniperHebrew/core/hebrew"
)

// Span is a byte range [Start, End) of the plain-language text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Verse holds the Hebrew tokens and plain-language text of one verse.
type Verse struct {
	Ref     Ref     `json:"ref"`
	Tokens  []Token `json:"tokens"`
	English string  `json:"english"`

	// EnglishHighlights are the matched spans of English, sorted and
	// non-overlapping. The text itself is never modified.
	EnglishHighlights []Span `json:"-"`
}

// New normalizes and tokenizes Hebrew text into a verse. Cantillation is
// stripped before tokenizing. The returned error reports recovered
// malformations; the verse is usable either way.
func New(ref Ref, hebrewText, english string) (*Verse, error) {
	tokens, err := Tokenize(hebrew.StripCantillation(hebrew.Normalize(hebrewText)))
	return &Verse{Ref: ref, Tokens: tokens, English: english}, err
}

// Clone returns a deep copy that can be searched without affecting v.
func (v *Verse) Clone() *Verse {
	c := *v
	c.Tokens = append([]Token(nil), v.Tokens...)
	c.EnglishHighlights = append([]Span(nil), v.EnglishHighlights...)
	return &c
}

// ResetHighlights clears token flags and English spans.
func (v *Verse) ResetHighlights() {
	ResetTokens(v.Tokens)
	v.EnglishHighlights = nil
}

// HighlightedTokens returns the indexes of highlighted tokens.
func (v *Verse) HighlightedTokens() []int {
	var idx []int
	for i, t := range v.Tokens {
		if t.Highlighted {
			idx = append(idx, i)
		}
	}
	return idx
}

// IsHighlighted reports whether any token or English span is highlighted.
func (v *Verse) IsHighlighted() bool {
	return len(v.EnglishHighlights) > 0 || len(v.HighlightedTokens()) > 0
}

// AddEnglishHighlights merges spans into the verse's English highlights.
// Adding the same spans twice leaves the highlights unchanged.
func (v *Verse) AddEnglishHighlights(spans []Span) {
	if len(spans) == 0 {
		return
	}
	all := append(append([]Span(nil), v.EnglishHighlights...), spans...)
	sort.Slice(all, func(i, j int) bool {
		if all[i].Start != all[j].Start {
			return all[i].Start < all[j].Start
		}
		return all[i].End < all[j].End
	})
	merged := all[:1]
	for _, s := range all[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	v.EnglishHighlights = merged
}

// Hebrew reassembles the verse text from its tokens.
func (v *Verse) Hebrew() string {
	var sb strings.Builder
	for _, t := range v.Tokens {
		sb.WriteString(t.Word)
		sb.WriteString(t.Space)
	}
	return strings.TrimSpace(sb.String())
}

// Translit returns the transliteration of the whole verse, token by token.
func (v *Verse) Translit() string {
	var sb strings.Builder
	for _, t := range v.Tokens {
		sb.WriteString(t.Translit())
		sb.WriteString(t.TranslitSpace())
	}
	return strings.TrimSpace(sb.String())
}

// Book is an ordered list of verses.
type Book struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Order  int      `json:"order"`
	Verses []*Verse `json:"verses"`
}

// Verse returns the verse at chapter:verse, or nil.
func (b *Book) Verse(chapter, verse int) *Verse {
	for _, v := range b.Verses {
		if v.Ref.Chapter == chapter && v.Ref.Verse == verse {
			return v
		}
	}
	return nil
}

// SortVerses puts verses in chapter:verse order.
func (b *Book) SortVerses() {
	sort.SliceStable(b.Verses, func(i, j int) bool {
		return b.Verses[i].Ref.Less(b.Verses[j].Ref)
	})
}
