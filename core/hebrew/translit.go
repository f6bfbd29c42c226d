package hebrew

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
)

// Transliterator renders clumps in Latin script. It is immutable after
// construction and safe for concurrent use.
type Transliterator struct {
	tables Tables
	rules  []compiledRule
}

// NewTransliterator builds a transliterator from tables and an ordered rule
// list. A nil table is skipped; an empty one is rejected, as is a rule
// pattern that does not compile.
func NewTransliterator(tables Tables, rules []Rule) (*Transliterator, error) {
	for _, table := range []*Table{tables.Consonants, tables.Vowels, tables.Punctuation} {
		if table != nil && table.Len() == 0 {
			return nil, errors.NewValidation("tables", table.Name()+" table has no entries")
		}
	}
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, errors.Wrap(err, "compile substitution rules")
	}
	return &Transliterator{tables: tables, rules: compiled}, nil
}

var defaultTransliterator = sync.OnceValue(func() *Transliterator {
	t, err := NewTransliterator(DefaultTables(), defaultRules)
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the shared transliterator built from DefaultTables and
// DefaultRules.
func Default() *Transliterator {
	return defaultTransliterator()
}

// Transliterate renders clumps with the default transliterator.
func Transliterate(cs []Clump) string {
	return Default().Transliterate(cs)
}

// TransliterateString clumps text and renders it with the default
// transliterator.
func TransliterateString(text string) string {
	return Default().Transliterate(Clumps(text))
}

// Transliterate renders cs, applies the substitution rules and lower-cases the
// result.
func (t *Transliterator) Transliterate(cs []Clump) string {
	s, _ := t.transliterate(cs, false)
	return s
}

// TransliterateWithDiagnostics is Transliterate plus a NoTableEntryError for
// every Hebrew-block scalar that no table covered.
func (t *Transliterator) TransliterateWithDiagnostics(cs []Clump) (string, []error) {
	return t.transliterate(cs, true)
}

// TransliterateClump renders a single clump from the tables alone. The
// substitution rules are not applied.
func (t *Transliterator) TransliterateClump(c Clump) string {
	var sb strings.Builder
	t.writeClump(&sb, c, nil)
	return sb.String()
}

func (t *Transliterator) transliterate(cs []Clump, diagnose bool) (string, []error) {
	var (
		sb    strings.Builder
		diags []error
	)
	var report *[]error
	if diagnose {
		report = &diags
	}
	for _, c := range cs {
		t.writeClump(&sb, c, report)
	}
	s := applyRules(t.rules, sb.String())
	// Casers carry state and are not shared between goroutines.
	return cases.Lower(language.Und).String(s), diags
}

func (t *Transliterator) writeClump(sb *strings.Builder, c Clump, report *[]error) {
	key := lookupKey(c)
	i := 0
	for _, table := range []*Table{t.tables.Consonants, t.tables.Vowels, t.tables.Punctuation} {
		i += consume(sb, table, key[i:])
	}

	for i < len(key) {
		if n := consume(sb, t.tables.Vowels, key[i:]); n > 0 {
			i += n
			continue
		}
		if n := consume(sb, t.tables.Punctuation, key[i:]); n > 0 {
			i += n
			continue
		}
		r := key[i]
		i++
		if cat := Classify(r).Category; cat == Cantillation || cat == SilentModifier {
			continue
		}
		sb.WriteRune(r)
		if report != nil && r >= hebrewBlockStart && r <= hebrewBlockEnd {
			*report = append(*report, &errors.NoTableEntryError{Scalar: r, Clump: c.Raw()})
		}
	}
}

// consume repeatedly takes the longest prefix of key known to table and
// returns the number of scalars consumed.
func consume(sb *strings.Builder, table *Table, key []rune) int {
	if table == nil {
		return 0
	}
	used := 0
	for used < len(key) {
		v, n, ok := table.Longest(key[used:])
		if !ok {
			break
		}
		sb.WriteString(v)
		used += n
	}
	return used
}

// lookupKey orders the raw scalars of a clump the way the table keys are
// written: base, then dagesh, shin dot, sin dot and rafe, then the remaining
// marks in input order. Source texts disagree on mark order, so the raw
// window cannot be used as is.
func lookupKey(c Clump) []rune {
	raw := c.raw
	if len(raw) <= 1 {
		return raw
	}
	key := make([]rune, 0, len(raw))
	key = append(key, raw[0])
	for _, m := range [...]rune{Dagesh, ShinDot, SinDot, Rafe} {
		for _, r := range raw[1:] {
			if r == m {
				key = append(key, r)
				break
			}
		}
	}
	for _, r := range raw[1:] {
		switch r {
		case Dagesh, ShinDot, SinDot, Rafe:
			continue
		}
		key = append(key, r)
	}
	return key
}

// ReverseWords reverses the order of whitespace-separated words, for showing
// a transliteration alongside right-to-left text.
func ReverseWords(s string) string {
	words := strings.Fields(s)
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, " ")
}
