package search

import (
	"regexp"
	"strings"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
	"github.com/FocuswithJustin/JuniperHebrew/core/verse"
)

var strongsRegex = regexp.MustCompile(`^[HG]\d+$`)

// IsStrongs reports whether query is a Strong's number such as "H7225".
func IsStrongs(query string) bool {
	return strongsRegex.MatchString(strings.ToUpper(strings.TrimSpace(query)))
}

// Strongs matches tokens whose lexical tag equals an id exactly.
type Strongs struct {
	id string
}

// CompileStrongs validates id and returns its matcher.
func CompileStrongs(id string) (*Strongs, error) {
	norm := strings.ToUpper(strings.TrimSpace(id))
	if !strongsRegex.MatchString(norm) {
		return nil, errors.NewValidation("strongs", "expected H or G followed by digits, got "+id)
	}
	return &Strongs{id: norm}, nil
}

// ID returns the normalized tag.
func (s *Strongs) ID() string { return s.id }

func (s *Strongs) String() string { return s.id }

// MatchTokens flags every token tagged with the id and returns their count.
func (s *Strongs) MatchTokens(tokens []verse.Token) int {
	count := 0
	for i := range tokens {
		if strings.EqualFold(tokens[i].Strongs, s.id) {
			tokens[i].Highlighted = true
			count++
		}
	}
	return count
}

// MatchVerse searches the Hebrew tokens only; English text carries no tags.
func (s *Strongs) MatchVerse(v *verse.Verse, lang Lang) int {
	if !lang.hebrew() {
		return 0
	}
	return s.MatchTokens(v.Tokens)
}

// Parse returns a Strong's matcher for a Strong's number and a compiled
// Pattern for anything else.
func Parse(query string, opts ...Option) (Matcher, error) {
	if IsStrongs(query) {
		s, err := CompileStrongs(query)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	p, err := Compile(query, opts...)
	if err != nil {
		return nil, err
	}
	return p, nil
}
