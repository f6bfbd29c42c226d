package hebrew

import (
	"strings"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
)

// Clump is one base scalar (consonant, punctuation mark or pass-through
// character) followed by the marks attached to it.
//
// Marks holds the attached niqqud and cantillation. Silent modifiers are not
// part of Marks, but the clump keeps its untouched scalar window so that the
// transliteration tables can still tell shin from sin.
type Clump struct {
	base  rune
	class Class
	marks []rune
	raw   []rune
}

// Base returns the leading scalar.
func (c Clump) Base() rune { return c.base }

// Class returns the classification of the leading scalar.
func (c Clump) Class() Class { return c.class }

// Marks returns a copy of the attached niqqud and cantillation, in input order.
func (c Clump) Marks() []rune {
	return append([]rune(nil), c.marks...)
}

// Raw returns every scalar of the clump in input order, silent modifiers
// included.
func (c Clump) Raw() string { return string(c.raw) }

// String returns the base followed by its stored marks. Silent modifiers are
// not included.
func (c Clump) String() string {
	var sb strings.Builder
	sb.WriteRune(c.base)
	for _, m := range c.marks {
		sb.WriteRune(m)
	}
	return sb.String()
}

// Len returns the number of stored scalars (base plus marks).
func (c Clump) Len() int { return 1 + len(c.marks) }

// Clumps groups text into clumps. It never fails and returns nil for empty
// input.
//
// A silent modifier with no preceding clump is dropped. A niqqud or
// cantillation mark with no preceding clump opens a pass-through clump of its
// own so that no audible information is lost.
func Clumps(text string) []Clump {
	out, _ := segment(text, false)
	return out
}

// ClumpsWithDiagnostics is Clumps plus a report of unmapped Hebrew-block
// scalars and dropped leading modifiers.
func ClumpsWithDiagnostics(text string) ([]Clump, []error) {
	return segment(text, true)
}

func segment(text string, diagnose bool) ([]Clump, []error) {
	if text == "" {
		return nil, nil
	}

	var (
		out   []Clump
		diags []error
	)
	cur := -1
	pos := 0
	for _, r := range text {
		class := Classify(r)
		switch {
		case class.Category.StartsClump():
			if diagnose && IsUnmapped(r) {
				diags = append(diags, &errors.UnmappedCodepointError{Scalar: r, Position: pos})
			}
			out = append(out, Clump{base: r, class: class, raw: []rune{r}})
			cur = len(out) - 1

		case class.Category == SilentModifier:
			if cur < 0 {
				if diagnose {
					diags = append(diags, &errors.UnmappedCodepointError{Scalar: r, Position: pos})
				}
				break
			}
			out[cur].raw = append(out[cur].raw, r)

		default:
			if cur < 0 {
				out = append(out, Clump{base: r, class: Class{Category: PassThrough}, raw: []rune{r}})
				cur = len(out) - 1
				break
			}
			out[cur].marks = append(out[cur].marks, r)
			out[cur].raw = append(out[cur].raw, r)
		}
		pos++
	}
	return out, diags
}

// Join concatenates the stored scalars of every clump. For any input this
// reproduces the text with silent modifiers removed.
func Join(cs []Clump) string {
	var sb strings.Builder
	for _, c := range cs {
		sb.WriteString(c.String())
	}
	return sb.String()
}
