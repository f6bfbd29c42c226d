// Package corpus loads book files into tokenized books and keeps the set of
// loaded books for searching.
//
// Book files are JSON, optionally xz-compressed (.json.xz), or gathered in a
// .tar.xz / .tar.gz bundle. A word-array file may have a plain-language
// sibling named <code>.en.json beside it.
package corpus

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ulikunitz/xz"
	"golang.org/x/sync/errgroup"

	"github.com/FocuswithJustin/JuniperHebrew/core/cache"
	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
	"github.com/FocuswithJustin/JuniperHebrew/core/hebrew"
	"github.com/FocuswithJustin/JuniperHebrew/core/search"
	"github.com/FocuswithJustin/JuniperHebrew/core/verse"
	"github.com/FocuswithJustin/JuniperHebrew/internal/archive"
	"github.com/FocuswithJustin/JuniperHebrew/internal/logging"
)

// Options configures loading.
type Options struct {
	// FixEnglish rewrites "The LORD (God)" as "Yahweh" in English text.
	FixEnglish bool

	// CacheSize bounds the word transliteration cache. Zero means unbounded.
	CacheSize int

	// Workers bounds parallel file decoding. Zero means GOMAXPROCS.
	Workers int
}

// Corpus is a set of loaded books.
type Corpus struct {
	opts  Options
	words *cache.WordCache

	mu    sync.RWMutex
	books map[string]*verse.Book
	diags []Diagnostic
}

// New creates an empty corpus.
func New(opts Options) *Corpus {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return &Corpus{
		opts:  opts,
		words: cache.NewWordCache(opts.CacheSize, hebrew.TransliterateString),
		books: make(map[string]*verse.Book),
	}
}

// Add stores b, replacing any book with the same code.
func (c *Corpus) Add(b *verse.Book, diags ...Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.books[b.Code] = b
	c.diags = append(c.diags, diags...)
}

// Books returns the loaded books in canonical order.
func (c *Corpus) Books() []*verse.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*verse.Book, 0, len(c.books))
	for _, b := range c.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// Book returns the loaded book matching alias.
func (c *Corpus) Book(alias string) (*verse.Book, error) {
	code := alias
	if info, err := Resolve(alias); err == nil {
		code = info.Code
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if b, ok := c.books[code]; ok {
		return b, nil
	}
	return nil, errors.NewNotFound("book", alias)
}

// Len returns the number of loaded books.
func (c *Corpus) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}

// Diagnostics returns the problems found while loading, in load order.
func (c *Corpus) Diagnostics() []Diagnostic {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Diagnostic(nil), c.diags...)
}

// LogDiagnostics writes every load diagnostic to the logger.
func (c *Corpus) LogDiagnostics(ctx context.Context) {
	for _, d := range c.Diagnostics() {
		logging.Diagnostic(ctx, d.Err, "ref", d.Ref.String())
	}
}

// Translit transliterates a word through the corpus word cache.
func (c *Corpus) Translit(word string) string {
	return c.words.Lookup(word)
}

// CacheStats reports word cache usage.
func (c *Corpus) CacheStats() cache.Stats {
	return c.words.Stats()
}

// Vocabulary returns the distinct transliterated words of the corpus.
func (c *Corpus) Vocabulary() []string {
	return search.Vocabulary(c.Books(), c.Translit)
}

// source is one book file read into memory.
type source struct {
	name    string
	data    []byte
	english []byte
}

// LoadFile loads one book file, or every book in a bundle.
func (c *Corpus) LoadFile(ctx context.Context, path string) error {
	if archive.IsBundle(path) {
		return c.LoadBundle(ctx, path)
	}
	src, err := readSource(path)
	if err != nil {
		return err
	}
	return c.decode(ctx, []source{src})
}

// LoadGlob loads every file matching a doublestar pattern ("books/**/*.json*").
// Plain-language siblings are picked up by their Hebrew files.
func (c *Corpus) LoadGlob(ctx context.Context, pattern string) error {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return errors.NewValidation("corpus", err.Error())
	}

	var srcs []source
	bundles := 0
	for _, m := range matches {
		switch {
		case archive.IsBundle(m):
			if err := c.LoadBundle(ctx, m); err != nil {
				return err
			}
			bundles++
		case isBookFile(m):
			src, err := readSource(m)
			if err != nil {
				return err
			}
			srcs = append(srcs, src)
		}
	}
	if len(srcs) == 0 && bundles == 0 {
		return errors.NewNotFound("book files", pattern)
	}
	return c.decode(ctx, srcs)
}

// LoadBundle loads every book file in a .tar.xz or .tar.gz bundle.
func (c *Corpus) LoadBundle(ctx context.Context, path string) error {
	files, err := archive.ReadAll(path, func(name string) bool {
		return strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".json.xz")
	})
	if err != nil {
		return err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		if isBookFile(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	srcs := make([]source, 0, len(names))
	for _, name := range names {
		data, err := decompress(name, files[name])
		if err != nil {
			return err
		}
		src := source{name: name, data: data}
		for _, en := range englishNames(name) {
			if raw, ok := files[en]; ok {
				if src.english, err = decompress(en, raw); err != nil {
					return err
				}
				break
			}
		}
		srcs = append(srcs, src)
	}
	return c.decode(ctx, srcs)
}

// decode builds books in parallel and adds them in source order.
func (c *Corpus) decode(ctx context.Context, srcs []source) error {
	type result struct {
		book  *verse.Book
		diags []Diagnostic
	}
	results := make([]result, len(srcs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)
	for i, src := range srcs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, diags, err := DecodeBook(src.name, src.data, src.english, c.opts.FixEnglish)
			if err != nil {
				return err
			}
			results[i] = result{b, diags}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		c.Add(r.book, r.diags...)
		logging.DebugContext(ctx, "book loaded", "book", r.book.Code, "verses", len(r.book.Verses), "diagnostics", len(r.diags))
	}
	return nil
}

func isBookFile(name string) bool {
	if strings.Contains(filepath.Base(name), ".en.json") {
		return false
	}
	return strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".json.xz")
}

// englishNames lists the sibling names tried for a Hebrew file.
func englishNames(name string) []string {
	base := strings.TrimSuffix(strings.TrimSuffix(name, ".xz"), ".json")
	return []string{base + ".en.json", base + ".en.json.xz"}
}

func readSource(path string) (source, error) {
	data, err := readFile(path)
	if err != nil {
		return source{}, err
	}
	src := source{name: path, data: data}
	for _, en := range englishNames(path) {
		if _, err := os.Stat(en); err == nil {
			if src.english, err = readFile(en); err != nil {
				return source{}, err
			}
			break
		}
	}
	return src, nil
}

func readFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("book file", path)
		}
		return nil, errors.NewIO("read", path, err)
	}
	return decompress(path, raw)
}

func decompress(name string, raw []byte) ([]byte, error) {
	if !strings.HasSuffix(name, ".xz") {
		return raw, nil
	}
	r, err := xz.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.NewIO("xz", name, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewIO("xz", name, err)
	}
	return data, nil
}
