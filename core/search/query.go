// Package search compiles word and phrase queries and matches them against
// verse tokens and plain-language text.
//
// A query is split into terms on whitespace, hyphen, colon and maqaf. Each
// wildcard in a term matches any run of characters. Multi-term queries match
// a window of consecutive tokens: the first term must end its token, interior
// terms must equal theirs, and the last term must begin its token.
package search

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
	"github.com/FocuswithJustin/JuniperHebrew/core/hebrew"
	"github.com/FocuswithJustin/JuniperHebrew/core/verse"
)

// DefaultWildcard matches any run of characters inside a term.
const DefaultWildcard = '*'

const (
	tokenGap = `.*`
	textGap  = `\S*`
	textSep  = `[\s\-:]+`
)

//nolint:govet // participle grammar tags are not standard struct tags
type queryGrammar struct {
	Terms []string `@Term*`
}

var queryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Term", Pattern: `[^\s\-:\x{05BE}]+`},
	{Name: "Sep", Pattern: `[\s\-:\x{05BE}]+`},
})

var queryParser = participle.MustBuild[queryGrammar](
	participle.Lexer(queryLexer),
	participle.Elide("Sep"),
)

// Kind says which part of a token a term must match.
type Kind uint8

const (
	// StartsWith matches a prefix of the token.
	StartsWith Kind = iota
	// Equals matches the whole token.
	Equals
	// EndsWith matches a suffix of the token.
	EndsWith
)

func (k Kind) String() string {
	switch k {
	case StartsWith:
		return "starts-with"
	case Equals:
		return "equals"
	case EndsWith:
		return "ends-with"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Term is one compiled query term.
type Term struct {
	Kind Kind
	Text string
	re   *regexp.Regexp
}

// Match reports whether s satisfies the term.
func (t Term) Match(s string) bool {
	return t.re.MatchString(s)
}

// Form selects which representation of a token terms are compared against.
type Form uint8

const (
	// FormTranslit compares against the token's transliteration.
	FormTranslit Form = iota
	// FormConsonantal compares against the unpointed Hebrew word.
	FormConsonantal
)

type options struct {
	wildcard rune
	translit func(string) string
}

// Option configures Compile.
type Option func(*options)

// WithWildcard replaces the wildcard character.
func WithWildcard(r rune) Option {
	return func(o *options) { o.wildcard = r }
}

// WithTranslit supplies the function used to transliterate token words,
// typically a memoizing wrapper around hebrew.TransliterateString.
func WithTranslit(fn func(string) string) Option {
	return func(o *options) { o.translit = fn }
}

// Pattern is a compiled query. It is immutable and safe for concurrent use.
type Pattern struct {
	query    string
	terms    []Term
	text     *regexp.Regexp
	form     Form
	translit func(string) string
}

// Compile parses a query into a Pattern. A query containing Hebrew letters
// is matched against unpointed token words; any other query is matched
// against transliterations.
//
// The first term of a phrase matches the end of its token, the last term the
// start, and interior terms the whole token. A single term matches the start
// of a token.
func Compile(query string, opts ...Option) (*Pattern, error) {
	o := options{wildcard: DefaultWildcard, translit: hebrew.TransliterateString}
	for _, opt := range opts {
		opt(&o)
	}
	if o.wildcard == '-' || o.wildcard == ':' || unicode.IsSpace(o.wildcard) || o.wildcard == hebrew.Maqaf {
		return nil, errors.NewValidation("wildcard", fmt.Sprintf("%q is a term separator", o.wildcard))
	}

	p := &Pattern{query: query, form: FormTranslit, translit: o.translit}
	if isHebrewQuery(query) {
		p.form = FormConsonantal
		query = hebrew.StripNiqqud(hebrew.Normalize(query))
	}

	parsed, err := queryParser.ParseString("", query)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", p.query, err)
	}

	n := len(parsed.Terms)
	textParts := make([]string, 0, n)
	for i, raw := range parsed.Terms {
		kind := Equals
		switch {
		case i == n-1:
			kind = StartsWith
		case i == 0:
			kind = EndsWith
		}
		re, err := regexp.Compile(anchor(kind, expand(raw, o.wildcard, tokenGap)))
		if err != nil {
			return nil, fmt.Errorf("invalid query term %q: %w", raw, err)
		}
		p.terms = append(p.terms, Term{Kind: kind, Text: raw, re: re})
		textParts = append(textParts, expand(raw, o.wildcard, textGap))
	}

	if n > 0 {
		re, err := regexp.Compile(`(?i)` + strings.Join(textParts, textSep))
		if err != nil {
			return nil, fmt.Errorf("invalid query %q: %w", p.query, err)
		}
		p.text = re
	}
	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(query string, opts ...Option) *Pattern {
	p, err := Compile(query, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Query returns the source query.
func (p *Pattern) Query() string { return p.query }

// Terms returns the compiled terms in query order.
func (p *Pattern) Terms() []Term { return append([]Term(nil), p.terms...) }

// Form returns the token representation the pattern compares against.
func (p *Pattern) Form() Form { return p.form }

// IsEmpty reports whether the query had no terms. An empty pattern matches
// everything, so callers searching a corpus should reject it.
func (p *Pattern) IsEmpty() bool { return len(p.terms) == 0 }

func (p *Pattern) String() string { return p.query }

func (p *Pattern) compareForm(t verse.Token) string {
	if p.form == FormConsonantal {
		return t.Consonantal
	}
	return p.translit(t.Word)
}

// expand quotes a term and replaces each wildcard with gap.
func expand(term string, wildcard rune, gap string) string {
	parts := strings.Split(term, string(wildcard))
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return strings.Join(parts, gap)
}

func anchor(kind Kind, body string) string {
	switch kind {
	case StartsWith:
		return `(?i)^` + body
	case Equals:
		return `(?i)^` + body + `$`
	default:
		return `(?i)` + body + `$`
	}
}

func isHebrewQuery(query string) bool {
	for _, r := range query {
		switch hebrew.Classify(r).Category {
		case hebrew.Consonant, hebrew.FinalConsonant:
			return true
		}
	}
	return false
}
