package search

import (
	"context"
	"testing"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
	"github.com/FocuswithJustin/JuniperHebrew/core/verse"
)

func mustVerse(t *testing.T, book string, ch, v int, he, en string) *verse.Verse {
	t.Helper()
	vv, err := verse.New(verse.Ref{Book: book, Chapter: ch, Verse: v}, he, en)
	if err != nil {
		t.Fatalf("verse.New(%s %d:%d) error = %v", book, ch, v, err)
	}
	return vv
}

func testBooks(t *testing.T) []*verse.Book {
	gen := &verse.Book{Code: "Gen", Name: "Genesis", Order: 1, Verses: []*verse.Verse{
		mustVerse(t, "Gen", 1, 1,
			"ב\u05B0\u05BCר\u05B5אש\u05B4\u05C1ית ב\u05B8\u05BCר\u05B8א א\u05B1ל\u05B9ה\u05B4ים א\u05B5ת ה\u05B7ש\u05B8\u05BC\u05C1מ\u05B7י\u05B4ם ו\u05B0א\u05B5ת ה\u05B8א\u05B8ר\u05B6ץ\u05C3",
			"In the beginning God created the heaven and the earth."),
		mustVerse(t, "Gen", 1, 2,
			"ו\u05B0ה\u05B8א\u05B8ר\u05B6ץ ה\u05B8י\u05B0ת\u05B8ה ת\u05B9הו\u05BC ו\u05B8ב\u05B9הו\u05BC",
			"And the earth was without form, and void"),
	}}
	exo := &verse.Book{Code: "Exo", Name: "Exodus", Order: 2, Verses: []*verse.Verse{
		mustVerse(t, "Exo", 1, 1,
			"ו\u05B0א\u05B5ל\u05B6\u05BCה ש\u05B0\u05C1מו\u05B9ת",
			"Now these are the names"),
	}}
	// Deliberately out of canonical order.
	return []*verse.Book{exo, gen}
}

func refs(res *Result) []verse.Ref {
	var out []verse.Ref
	for _, h := range res.Hits {
		out = append(out, h.Verse.Ref)
	}
	return out
}

func TestCorpusOrderAndCounts(t *testing.T) {
	books := testBooks(t)
	res, err := Corpus(context.Background(), books, MustCompile("the"), Options{Lang: LangEnglish, Workers: 2})
	if err != nil {
		t.Fatalf("Corpus() error = %v", err)
	}
	// "these" in Exodus also contains the term.
	if res.Occurrences != 6 {
		t.Errorf("Occurrences = %d, want 6", res.Occurrences)
	}
	if res.Verses != 3 {
		t.Errorf("Verses = %d, want 3", res.Verses)
	}
	want := []verse.Ref{{Book: "Gen", Chapter: 1, Verse: 1}, {Book: "Gen", Chapter: 1, Verse: 2}, {Book: "Exo", Chapter: 1, Verse: 1}}
	got := refs(res)
	if len(got) != len(want) {
		t.Fatalf("hits = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hit %d = %v, want %v", i, got[i], want[i])
		}
	}
	if res.RunID == "" || res.Query != "the" {
		t.Errorf("RunID = %q, Query = %q", res.RunID, res.Query)
	}
}

func TestCorpusDoesNotMutateBooks(t *testing.T) {
	books := testBooks(t)
	res, err := Corpus(context.Background(), books, MustCompile("*arets"), Options{Lang: LangHebrew})
	if err != nil {
		t.Fatal(err)
	}
	if res.Occurrences != 2 {
		t.Errorf("Occurrences = %d, want 2", res.Occurrences)
	}
	for _, h := range res.Hits {
		if !h.Verse.IsHighlighted() {
			t.Errorf("hit %v carries no highlight", h.Verse.Ref)
		}
	}
	for _, b := range books {
		for _, v := range b.Verses {
			if v.IsHighlighted() {
				t.Errorf("corpus verse %v was highlighted", v.Ref)
			}
		}
	}
}

func TestCorpusFilters(t *testing.T) {
	books := testBooks(t)
	p := MustCompile("the")

	res, err := Corpus(context.Background(), books, p, Options{Lang: LangEnglish, Books: []string{"exo"}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Verses != 1 || res.Hits[0].Verse.Ref.Book != "Exo" {
		t.Errorf("book filter hits = %v", refs(res))
	}

	res, err = Corpus(context.Background(), books, p, Options{
		Lang:   LangEnglish,
		Ranges: []verse.Range{{Book: "Gen", Chapter: 1, Verse: 2}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Verses != 1 || res.Hits[0].Verse.Ref.Verse != 2 {
		t.Errorf("range filter hits = %v", refs(res))
	}

	res, err = Corpus(context.Background(), books, p, Options{Lang: LangEnglish, Limit: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Hits) != 1 || res.Verses != 3 {
		t.Errorf("limit: %d hits, %d verses", len(res.Hits), res.Verses)
	}
}

func TestCorpusStrongs(t *testing.T) {
	books := testBooks(t)
	books[1].Verses[0].Tokens[1].Strongs = "H1254"

	m, err := Parse("h1254")
	if err != nil {
		t.Fatal(err)
	}
	res, err := Corpus(context.Background(), books, m, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Occurrences != 1 || res.Hits[0].Verse.HighlightedTokens()[0] != 1 {
		t.Errorf("Strong's search = %+v", res)
	}
}

func TestCorpusEmptyQuery(t *testing.T) {
	_, err := Corpus(context.Background(), testBooks(t), MustCompile("  "), Options{})
	if !errors.Is(err, errors.ErrEmptyQuery) {
		t.Errorf("err = %v, want ErrEmptyQuery", err)
	}
}

func TestCorpusCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Corpus(ctx, testBooks(t), MustCompile("the"), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
