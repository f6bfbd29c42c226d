package corpus

import (
	"encoding/json"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
	"github.com/FocuswithJustin/JuniperHebrew/core/hebrew"
	"github.com/FocuswithJustin/JuniperHebrew/core/verse"
)

// bookFile is the on-disk layout of a book. Native files carry Verses;
// files converted from the Westminster Leningrad Codex carry Text, nested
// chapters of verses of word arrays [word, consonantal, translit, strongs,
// space, translitSpace].
type bookFile struct {
	Code   string            `json:"code,omitempty"`
	Name   string            `json:"name,omitempty"`
	Verses []verseFile       `json:"verses,omitempty"`
	Text   [][][][]rawString `json:"text,omitempty"`
}

type verseFile struct {
	Chapter int      `json:"chapter"`
	Verse   int      `json:"verse"`
	Hebrew  string   `json:"hebrew"`
	English string   `json:"english,omitempty"`
	Strongs []string `json:"strongs,omitempty"`
}

// englishFile is a plain-language sibling in the same nested layout, with
// word arrays [word, space, ...].
type englishFile struct {
	Text [][][][]rawString `json:"text"`
}

// rawString decodes a JSON string and treats anything else (null, lists)
// as empty.
type rawString string

func (s *rawString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err == nil {
		*s = rawString(v)
	} else {
		*s = ""
	}
	return nil
}

func field(word []rawString, i int) string {
	if i < len(word) {
		return string(word[i])
	}
	return ""
}

// Diagnostic is a data-quality problem found while building a book.
type Diagnostic struct {
	Ref verse.Ref
	Err error
}

func (d Diagnostic) Error() string {
	return d.Ref.String() + ": " + d.Err.Error()
}

func (d Diagnostic) Unwrap() error { return d.Err }

var lordPattern = regexp.MustCompile(`[Tt]he L[Oo][Rr][Dd](?: God)?`)

// FixEnglish replaces "The LORD" and "the LORD God" with "Yahweh".
func FixEnglish(s string) string {
	return lordPattern.ReplaceAllString(s, "Yahweh")
}

// DecodeBook parses a book file. name is the file name, used for the code
// when the file does not carry one. english is an optional plain-language
// sibling for word-array files.
func DecodeBook(name string, data, english []byte, fix bool) (*verse.Book, []Diagnostic, error) {
	var f bookFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, errors.NewParse("json", name, err.Error())
	}

	code := f.Code
	if code == "" {
		code = bookCode(name)
	}
	b := &verse.Book{Code: code, Name: f.Name}
	if info, err := Resolve(code); err == nil {
		b.Code = info.Code
		b.Order = info.Order
		if b.Name == "" {
			b.Name = info.Name
		}
	} else {
		b.Order = len(canonical) + 1
	}
	if b.Name == "" {
		b.Name = b.Code
	}

	var diags []Diagnostic
	switch {
	case len(f.Verses) > 0:
		for _, vf := range f.Verses {
			ref := verse.Ref{Book: b.Code, Chapter: vf.Chapter, Verse: vf.Verse}
			v, d := buildVerse(ref, vf.Hebrew, vf.English, vf.Strongs, fix)
			b.Verses = append(b.Verses, v)
			diags = append(diags, d...)
		}
	case len(f.Text) > 0:
		var en [][][][]rawString
		if len(english) > 0 {
			var ef englishFile
			if err := json.Unmarshal(english, &ef); err != nil {
				return nil, nil, errors.NewParse("json", name+" (english)", err.Error())
			}
			en = ef.Text
		}
		for c, chapter := range f.Text {
			for vi, words := range chapter {
				ref := verse.Ref{Book: b.Code, Chapter: c + 1, Verse: vi + 1}
				var text strings.Builder
				strongs := make([]string, 0, len(words))
				for _, w := range words {
					space := field(w, 4)
					if space == "" {
						space = " "
					}
					text.WriteString(field(w, 0))
					text.WriteString(space)
					strongs = append(strongs, field(w, 3))
				}
				v, d := buildVerse(ref, text.String(), englishText(en, c, vi), strongs, fix)
				b.Verses = append(b.Verses, v)
				diags = append(diags, d...)
			}
		}
	default:
		return nil, nil, errors.NewParse("json", name, "no verses")
	}

	b.SortVerses()
	return b, diags, nil
}

func englishText(en [][][][]rawString, c, v int) string {
	if c >= len(en) || v >= len(en[c]) {
		return ""
	}
	var sb strings.Builder
	for _, w := range en[c][v] {
		sb.WriteString(field(w, 0))
		sb.WriteString(field(w, 1))
	}
	return strings.TrimSpace(sb.String())
}

// buildVerse tokenizes one verse and collects its diagnostics.
func buildVerse(ref verse.Ref, text, english string, strongs []string, fix bool) (*verse.Verse, []Diagnostic) {
	if fix {
		english = FixEnglish(english)
	}
	v, err := verse.New(ref, text, english)

	var diags []Diagnostic
	for _, e := range flatten(err) {
		diags = append(diags, Diagnostic{Ref: ref, Err: e})
	}

	cs, errs := hebrew.ClumpsWithDiagnostics(hebrew.StripCantillation(hebrew.Normalize(text)))
	_, terrs := hebrew.Default().TransliterateWithDiagnostics(cs)
	for _, e := range append(errs, terrs...) {
		diags = append(diags, Diagnostic{Ref: ref, Err: e})
	}

	if len(strongs) > 0 {
		if n := alignStrongs(v.Tokens, strongs); n != len(strongs) {
			diags = append(diags, Diagnostic{Ref: ref, Err: errors.NewValidation("strongs",
				fmt.Sprintf("%d tags for %d words", len(strongs), n))})
		}
	}
	return v, diags
}

// alignStrongs tags word tokens by index. Section marks such as "(פ)"
// carry no tag and are skipped. It returns the number of word tokens.
func alignStrongs(tokens []verse.Token, strongs []string) int {
	n := 0
	for i := range tokens {
		if isSectionMark(tokens[i].Word) {
			continue
		}
		if n < len(strongs) {
			tokens[i].Strongs = normalizeStrongs(strongs[n])
		}
		n++
	}
	return n
}

func isSectionMark(word string) bool {
	return strings.HasPrefix(word, "(") && strings.HasSuffix(word, ")")
}

// normalizeStrongs upper-cases a tag and prefixes bare numbers with "H".
func normalizeStrongs(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if s[0] >= '0' && s[0] <= '9' {
		return "H" + s
	}
	return s
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range j.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}

// bookCode derives a code from a file name: "dir/Gen.json.xz" gives "Gen".
func bookCode(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return base
}

// EncodeBook renders b in the native layout.
func EncodeBook(b *verse.Book) ([]byte, error) {
	f := bookFile{Code: b.Code, Name: b.Name}
	for _, v := range b.Verses {
		vf := verseFile{
			Chapter: v.Ref.Chapter,
			Verse:   v.Ref.Verse,
			Hebrew:  v.Hebrew(),
			English: v.English,
		}
		tagged := false
		for _, t := range v.Tokens {
			vf.Strongs = append(vf.Strongs, t.Strongs)
			tagged = tagged || t.Strongs != ""
		}
		if !tagged {
			vf.Strongs = nil
		}
		f.Verses = append(f.Verses, vf)
	}
	return json.MarshalIndent(f, "", "  ")
}
