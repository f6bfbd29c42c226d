package corpus

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
)

// Collection is a division of the Tanakh.
type Collection string

const (
	Torah   Collection = "Torah"
	Neviim  Collection = "Neviim"
	Ketuvim Collection = "Ketuvim"
)

// BookInfo describes one canonical book.
type BookInfo struct {
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Collection Collection `json:"collection"`
	Chapters   int        `json:"chapters"`
	Order      int        `json:"order"`
}

var canonical = []BookInfo{
	{Code: "Gen", Name: "Genesis", Collection: Torah, Chapters: 50},
	{Code: "Exo", Name: "Exodus", Collection: Torah, Chapters: 40},
	{Code: "Lev", Name: "Leviticus", Collection: Torah, Chapters: 27},
	{Code: "Num", Name: "Numbers", Collection: Torah, Chapters: 36},
	{Code: "Deu", Name: "Deuteronomy", Collection: Torah, Chapters: 34},
	{Code: "Jos", Name: "Joshua", Collection: Neviim, Chapters: 24},
	{Code: "Jdg", Name: "Judges", Collection: Neviim, Chapters: 21},
	{Code: "1Sa", Name: "1 Samuel", Collection: Neviim, Chapters: 31},
	{Code: "2Sa", Name: "2 Samuel", Collection: Neviim, Chapters: 24},
	{Code: "1Ki", Name: "1 Kings", Collection: Neviim, Chapters: 22},
	{Code: "2Ki", Name: "2 Kings", Collection: Neviim, Chapters: 25},
	{Code: "Isa", Name: "Isaiah", Collection: Neviim, Chapters: 66},
	{Code: "Jer", Name: "Jeremiah", Collection: Neviim, Chapters: 52},
	{Code: "Eze", Name: "Ezekiel", Collection: Neviim, Chapters: 48},
	{Code: "Hos", Name: "Hosea", Collection: Neviim, Chapters: 14},
	{Code: "Joe", Name: "Joel", Collection: Neviim, Chapters: 3},
	{Code: "Amo", Name: "Amos", Collection: Neviim, Chapters: 9},
	{Code: "Oba", Name: "Obadiah", Collection: Neviim, Chapters: 1},
	{Code: "Jon", Name: "Jonah", Collection: Neviim, Chapters: 4},
	{Code: "Mic", Name: "Micah", Collection: Neviim, Chapters: 7},
	{Code: "Nah", Name: "Nahum", Collection: Neviim, Chapters: 3},
	{Code: "Hab", Name: "Habakkuk", Collection: Neviim, Chapters: 3},
	{Code: "Zep", Name: "Zephaniah", Collection: Neviim, Chapters: 3},
	{Code: "Hag", Name: "Haggai", Collection: Neviim, Chapters: 2},
	{Code: "Zec", Name: "Zechariah", Collection: Neviim, Chapters: 14},
	{Code: "Mal", Name: "Malachi", Collection: Neviim, Chapters: 4},
	{Code: "Psa", Name: "Psalms", Collection: Ketuvim, Chapters: 150},
	{Code: "Pro", Name: "Proverbs", Collection: Ketuvim, Chapters: 31},
	{Code: "Job", Name: "Job", Collection: Ketuvim, Chapters: 42},
	{Code: "Sng", Name: "Song of Songs", Collection: Ketuvim, Chapters: 8},
	{Code: "Rth", Name: "Ruth", Collection: Ketuvim, Chapters: 4},
	{Code: "Lam", Name: "Lamentations", Collection: Ketuvim, Chapters: 5},
	{Code: "Ecc", Name: "Ecclesiastes", Collection: Ketuvim, Chapters: 12},
	{Code: "Est", Name: "Esther", Collection: Ketuvim, Chapters: 10},
	{Code: "Dan", Name: "Daniel", Collection: Ketuvim, Chapters: 12},
	{Code: "Ezr", Name: "Ezra", Collection: Ketuvim, Chapters: 10},
	{Code: "Neh", Name: "Nehemiah", Collection: Ketuvim, Chapters: 13},
	{Code: "1Ch", Name: "1 Chronicles", Collection: Ketuvim, Chapters: 29},
	{Code: "2Ch", Name: "2 Chronicles", Collection: Ketuvim, Chapters: 36},
}

// aliasIndex maps a lower-case alias to the first canonical book that
// claims it, so "jo" resolves to Joshua rather than Joel, Jonah or Job.
var aliasIndex = map[string]int{}

func init() {
	for i := range canonical {
		canonical[i].Order = i + 1
		for _, a := range aliases(canonical[i]) {
			if _, taken := aliasIndex[a]; !taken {
				aliasIndex[a] = i
			}
		}
	}
}

// aliases lists the accepted spellings of a book: its code, its full name
// without spaces, and prefixes of 2 to 5 letters. Numbered books accept
// the number on either side ("1sam", "sam1").
func aliases(b BookInfo) []string {
	name := strings.ToLower(strings.ReplaceAll(b.Name, " ", ""))
	out := []string{strings.ToLower(b.Code)}
	if name != "" && unicode.IsDigit(rune(name[0])) {
		num, rest := name[:1], name[1:]
		out = append(out, num+rest, rest+num)
		for i := 2; i <= 5 && i <= len(rest); i++ {
			out = append(out, num+rest[:i], rest[:i]+num)
		}
		return out
	}
	out = append(out, name)
	for i := 2; i <= 5 && i <= len(name); i++ {
		out = append(out, name[:i])
	}
	return out
}

// Canonical returns the 39 books in Tanakh order.
func Canonical() []BookInfo {
	return append([]BookInfo(nil), canonical...)
}

// Resolve finds the book matching alias. Spaces and case are ignored.
func Resolve(alias string) (BookInfo, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(alias), " ", ""))
	if i, ok := aliasIndex[key]; ok {
		return canonical[i], nil
	}
	return BookInfo{}, errors.NewNotFound("book", alias)
}

// ParseBookFilter expands a comma-separated list of books and inclusive
// book ranges ("Gen-Deu,Psa") into book codes in the order given.
// Duplicates are dropped. An empty filter selects every book and returns nil.
func ParseBookFilter(filter string) ([]string, error) {
	if strings.TrimSpace(filter) == "" {
		return nil, nil
	}

	var codes []string
	seen := map[string]bool{}
	add := func(code string) {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	for _, part := range strings.Split(filter, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		first, last, isRange := strings.Cut(part, "-")
		start, err := Resolve(first)
		if err != nil {
			return nil, err
		}
		if !isRange {
			add(start.Code)
			continue
		}
		end, err := Resolve(last)
		if err != nil {
			return nil, err
		}
		if end.Order < start.Order {
			return nil, errors.NewValidation("books", fmt.Sprintf("range %q runs backwards", part))
		}
		for _, b := range canonical[start.Order-1 : end.Order] {
			add(b.Code)
		}
	}
	return codes, nil
}
