package verse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
)

// Ref identifies a verse.
type Ref struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
}

func (r Ref) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// Less orders references by chapter and verse within a book.
func (r Ref) Less(o Ref) bool {
	if r.Chapter != o.Chapter {
		return r.Chapter < o.Chapter
	}
	return r.Verse < o.Verse
}

// Range selects a whole book, one chapter, one verse, or a run of verses
// within a chapter. Zero fields widen the selection.
type Range struct {
	Book    string
	Chapter int
	Verse   int
	End     int
}

//nolint:govet // participle grammar tags are not standard struct tags
type rangeGrammar struct {
	BookPrefix string       `@Int?`
	BookName   string       `@Ident`
	ChapterRef *chapterPart `( "."? @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type chapterPart struct {
	Chapter  int        `@Int`
	VerseRef *versePart `( ( "." | ":" ) @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type versePart struct {
	Verse int  `@Int`
	End   *int `( "-" @Int )?`
}

var rangeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[.:\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var rangeParser = participle.MustBuild[rangeGrammar](
	participle.Lexer(rangeLexer),
	participle.Elide("Whitespace"),
)

// ParseRange parses a reference such as "Gen", "Gen 1", "Gen 1:1",
// "1Sa 3:4-10" or the dotted form "Gen.1.1".
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, errors.NewValidation("reference", "empty reference")
	}

	parsed, err := rangeParser.ParseString("", s)
	if err != nil {
		return Range{}, fmt.Errorf("invalid reference %q: %w", s, err)
	}

	r := Range{Book: parsed.BookPrefix + parsed.BookName}
	if c := parsed.ChapterRef; c != nil {
		r.Chapter = c.Chapter
		if v := c.VerseRef; v != nil {
			r.Verse = v.Verse
			if v.End != nil {
				if *v.End < v.Verse {
					return Range{}, errors.NewValidation("reference", fmt.Sprintf("verse range %d-%d is reversed", v.Verse, *v.End))
				}
				r.End = *v.End
			}
		}
	}
	return r, nil
}

// Contains reports whether ref falls inside the range. Book codes compare
// case-insensitively.
func (r Range) Contains(ref Ref) bool {
	if !strings.EqualFold(r.Book, ref.Book) {
		return false
	}
	if r.Chapter == 0 {
		return true
	}
	if r.Chapter != ref.Chapter {
		return false
	}
	if r.Verse == 0 {
		return true
	}
	if r.End > 0 {
		return ref.Verse >= r.Verse && ref.Verse <= r.End
	}
	return ref.Verse == r.Verse
}

func (r Range) String() string {
	var sb strings.Builder
	sb.WriteString(r.Book)
	if r.Chapter > 0 {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(r.Chapter))
		if r.Verse > 0 {
			sb.WriteString(":")
			sb.WriteString(strconv.Itoa(r.Verse))
			if r.End > 0 {
				sb.WriteString("-")
				sb.WriteString(strconv.Itoa(r.End))
			}
		}
	}
	return sb.String()
}
