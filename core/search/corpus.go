package search

import (
	"context"
	"runtime"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
	"github.com/FocuswithJustin/JuniperHebrew/core/verse"
)

// Options controls a corpus search.
type Options struct {
	// Lang selects the searched text.
	Lang Lang

	// Books restricts the search to these book codes (case-insensitive).
	// Empty means every book.
	Books []string

	// Ranges further restricts the search to verses inside any range.
	Ranges []verse.Range

	// Workers bounds the number of books searched at once.
	// Zero means GOMAXPROCS.
	Workers int

	// Limit caps the number of hits returned. Counts still cover every hit.
	Limit int
}

// Hit is a matching verse. Verse is a highlighted clone.
type Hit struct {
	Verse *verse.Verse
	Count int
}

// Result summarizes a corpus search.
type Result struct {
	RunID       string
	Query       string
	Occurrences int
	Verses      int
	Hits        []Hit
}

// Corpus searches books in parallel, one book per worker. The books are not
// modified: each verse is matched on a clone and only matching clones are
// kept. Hits are ordered by book order, then chapter and verse.
func Corpus(ctx context.Context, books []*verse.Book, m Matcher, opts Options) (*Result, error) {
	if p, ok := m.(*Pattern); ok && p.IsEmpty() {
		return nil, errors.ErrEmptyQuery
	}

	selected := filterBooks(books, opts.Books)
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	perBook := make([][]Hit, len(selected))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, b := range selected {
		g.Go(func() error {
			hits, err := searchBook(ctx, b, m, opts)
			perBook[i] = hits
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{RunID: uuid.NewString(), Query: m.String()}
	for _, hits := range perBook {
		for _, h := range hits {
			res.Occurrences += h.Count
			res.Verses++
			if opts.Limit <= 0 || len(res.Hits) < opts.Limit {
				res.Hits = append(res.Hits, h)
			}
		}
	}
	return res, nil
}

func searchBook(ctx context.Context, b *verse.Book, m Matcher, opts Options) ([]Hit, error) {
	var hits []Hit
	for _, v := range b.Verses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !inRanges(v.Ref, opts.Ranges) {
			continue
		}
		c := v.Clone()
		c.ResetHighlights()
		if n := m.MatchVerse(c, opts.Lang); n > 0 {
			hits = append(hits, Hit{Verse: c, Count: n})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Verse.Ref.Less(hits[j].Verse.Ref)
	})
	return hits, nil
}

// filterBooks keeps the requested books and sorts them by canonical order.
func filterBooks(books []*verse.Book, codes []string) []*verse.Book {
	var out []*verse.Book
	for _, b := range books {
		if len(codes) == 0 || containsFold(codes, b.Code) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func inRanges(ref verse.Ref, ranges []verse.Range) bool {
	if len(ranges) == 0 {
		return true
	}
	for _, r := range ranges {
		if r.Contains(ref) {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, x := range list {
		if strings.EqualFold(x, s) {
			return true
		}
	}
	return false
}
