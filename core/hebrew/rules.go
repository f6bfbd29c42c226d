package hebrew

import (
	"fmt"
	"regexp"
)

// Rule is a find-and-replace pass over a whole transliteration. Replace may
// refer to capture groups with ${n}.
type Rule struct {
	Name    string
	Pattern string
	Replace string
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// Rules run top to bottom; later rules see the output of earlier ones.
var defaultRules = []Rule{
	// Two alef clumps side by side.
	{Name: "collapse-glottal", Pattern: `''+`, Replace: `'`},
	// A word-initial glottal before a vowel is not written.
	{Name: "initial-glottal", Pattern: `(^|[\s\-|])'(\pL)`, Replace: `${1}${2}`},
	// Hiriq followed by a vowelless yod is a long i.
	{Name: "hiriq-yod", Pattern: `iy([^aeiou]|$)`, Replace: `i${1}`},
	// Alef after a vowel and before a consonant or word end is quiescent.
	{Name: "quiescent-alef", Pattern: `([aeiou])'([^aeiou]|$)`, Replace: `${1}${2}`},
	// The -ayv suffix is pronounced -av.
	{Name: "final-ayv", Pattern: `ayv(\s|$)`, Replace: `av${1}`},
}

// DefaultRules returns a copy of the built-in substitution rules.
func DefaultRules() []Rule {
	return append([]Rule(nil), defaultRules...)
}

func compileRules(rules []Rule) ([]compiledRule, error) {
	out := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		out = append(out, compiledRule{Rule: r, re: re})
	}
	return out, nil
}

func applyRules(rules []compiledRule, s string) string {
	for _, r := range rules {
		s = r.re.ReplaceAllString(s, r.Replace)
	}
	return s
}
