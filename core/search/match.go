package search

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/JuniperHebrew/core/verse"
)

// Lang selects which text of a verse is searched.
type Lang string

const (
	// LangAll searches both Hebrew tokens and English text.
	LangAll Lang = ""
	// LangHebrew searches the Hebrew tokens.
	LangHebrew Lang = "he"
	// LangEnglish searches the English text.
	LangEnglish Lang = "en"
)

// ParseLang accepts "", "all", "he" and "en".
func ParseLang(s string) (Lang, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return LangAll, nil
	case "he", "hebrew":
		return LangHebrew, nil
	case "en", "english":
		return LangEnglish, nil
	}
	return LangAll, fmt.Errorf("unknown language %q", s)
}

func (l Lang) hebrew() bool  { return l == LangAll || l == LangHebrew }
func (l Lang) english() bool { return l == LangAll || l == LangEnglish }

// Matcher finds occurrences in a verse and highlights them.
type Matcher interface {
	// MatchVerse highlights matches in v and returns their count.
	MatchVerse(v *verse.Verse, lang Lang) int
	String() string
}

// MatchTokens slides a window of len(terms) tokens across tokens and flags
// every token of each matching window. Windows may overlap. Flags are only
// ever set, never cleared. It returns the number of matching windows.
//
// An empty pattern flags every token.
func (p *Pattern) MatchTokens(tokens []verse.Token) int {
	n := len(p.terms)
	if n == 0 {
		for i := range tokens {
			tokens[i].Highlighted = true
		}
		return len(tokens)
	}

	forms := make([]string, len(tokens))
	for i := range tokens {
		forms[i] = p.compareForm(tokens[i])
	}

	count := 0
	for start := 0; start+n <= len(tokens); start++ {
		if !p.window(forms[start : start+n]) {
			continue
		}
		count++
		for i := start; i < start+n; i++ {
			tokens[i].Highlighted = true
		}
	}
	return count
}

func (p *Pattern) window(forms []string) bool {
	for i, term := range p.terms {
		if !term.Match(forms[i]) {
			return false
		}
	}
	return true
}

// MatchText returns the byte spans of every non-overlapping match in text,
// in order. An empty pattern matches all of a non-empty text.
func (p *Pattern) MatchText(text string) []verse.Span {
	if p.text == nil {
		if text == "" {
			return nil
		}
		return []verse.Span{{Start: 0, End: len(text)}}
	}
	locs := p.text.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	spans := make([]verse.Span, len(locs))
	for i, loc := range locs {
		spans[i] = verse.Span{Start: loc[0], End: loc[1]}
	}
	return spans
}

// MatchVerse matches the pattern against the selected texts of v and
// returns the summed count. English spans are merged into the verse.
func (p *Pattern) MatchVerse(v *verse.Verse, lang Lang) int {
	count := 0
	if lang.english() {
		spans := p.MatchText(v.English)
		v.AddEnglishHighlights(spans)
		count += len(spans)
	}
	if lang.hebrew() {
		count += p.MatchTokens(v.Tokens)
	}
	return count
}

// Verse runs m against v.
func Verse(m Matcher, v *verse.Verse, lang Lang) int {
	return m.MatchVerse(v, lang)
}
