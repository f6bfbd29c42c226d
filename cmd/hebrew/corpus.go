package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
	"github.com/FocuswithJustin/JuniperHebrew/core/search"
	"github.com/FocuswithJustin/JuniperHebrew/core/sqlite"
	"github.com/FocuswithJustin/JuniperHebrew/core/verse"
	"github.com/FocuswithJustin/JuniperHebrew/internal/archive"
	"github.com/FocuswithJustin/JuniperHebrew/internal/corpus"
	"github.com/FocuswithJustin/JuniperHebrew/internal/logging"
)

// SearchCmd searches the corpus.
type SearchCmd struct {
	Query   []string `arg:"" help:"Transliterated, Hebrew or English words ('*' is a wildcard), or a Strong's number"`
	Lang    string   `help:"Text to search: all, he or en" default:"all" enum:"all,he,en"`
	Books   string   `help:"Book filter such as 'Gen-Deu,Psa'"`
	Range   []string `help:"Restrict to passages such as 'Gen 1:1-5' (repeatable)"`
	Limit   int      `help:"Maximum verses to print (0 prints all)" default:"25"`
	Suggest int      `help:"Suggestions to print when nothing matches" default:"5"`
	RTL     bool     `name:"rtl" help:"Print Hebrew words right to left"`
}

func (c *SearchCmd) Run(a *app) error {
	query := strings.Join(c.Query, " ")
	lang, err := search.ParseLang(c.Lang)
	if err != nil {
		return err
	}
	codes, err := corpus.ParseBookFilter(c.Books)
	if err != nil {
		return err
	}
	ranges, err := parseRanges(c.Range)
	if err != nil {
		return err
	}

	corp, err := a.loadCorpus()
	if err != nil {
		return err
	}
	m, err := search.Parse(query,
		search.WithWildcard(a.cfg.WildcardRune()),
		search.WithTranslit(corp.Translit))
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := search.Corpus(a.ctx, corp.Books(), m, search.Options{
		Lang:    lang,
		Books:   codes,
		Ranges:  ranges,
		Workers: a.cfg.Workers,
		Limit:   c.Limit,
	})
	if err != nil {
		return err
	}
	logging.SearchCompleted(a.ctx, query, res.Occurrences, res.Verses, time.Since(start),
		"lang", string(lang), "search_id", res.RunID)

	a.printf("%d occurrences in %d verses\n", res.Occurrences, res.Verses)
	for _, h := range res.Hits {
		a.printf("\n%s (%d)\n", h.Verse.Ref, h.Count)
		a.printVerse(h.Verse, corp.Translit, c.RTL)
	}
	if res.Verses > len(res.Hits) {
		a.printf("\n... %d more verses\n", res.Verses-len(res.Hits))
	}

	if res.Verses == 0 && c.Suggest > 0 {
		a.printSuggestions(m, corp, c.Suggest)
	}
	return nil
}

// printSuggestions offers near transliterations for each term of a
// transliteration query.
func (a *app) printSuggestions(m search.Matcher, corp *corpus.Corpus, n int) {
	p, ok := m.(*search.Pattern)
	if !ok || p.Form() != search.FormTranslit {
		return
	}
	vocab := corp.Vocabulary()
	for _, term := range p.Terms() {
		suggestions := search.Suggest(term.Text, vocab, n)
		if len(suggestions) == 0 {
			continue
		}
		words := make([]string, len(suggestions))
		for i, s := range suggestions {
			words[i] = s.Word
		}
		a.printf("did you mean (%s): %s\n", term.Text, strings.Join(words, ", "))
	}
}

// parseRanges parses passage ranges and resolves their book aliases.
func parseRanges(specs []string) ([]verse.Range, error) {
	var out []verse.Range
	for _, s := range specs {
		r, err := verse.ParseRange(s)
		if err != nil {
			return nil, err
		}
		info, err := corpus.Resolve(r.Book)
		if err != nil {
			return nil, err
		}
		r.Book = info.Code
		out = append(out, r)
	}
	return out, nil
}

// StrongsCmd lists verses tagged with a Strong's number.
type StrongsCmd struct {
	ID string `arg:"" help:"Strong's number such as H430"`
}

func (c *StrongsCmd) Run(a *app) error {
	if !search.IsStrongs(c.ID) {
		return errors.NewValidation("strongs", fmt.Sprintf("%q is not a Strong's number", c.ID))
	}
	st, err := a.openStore(true, nil)
	if err != nil {
		return err
	}
	defer st.Close()

	counts, err := st.FindStrongs(a.ctx, c.ID)
	if err != nil {
		return err
	}
	total := 0
	for _, sc := range counts {
		total += sc.Count
		a.printf("%s\t%d\n", sc.Ref, sc.Count)
	}
	a.printf("%d occurrences in %d verses\n", total, len(counts))
	return nil
}

// ShowCmd prints a passage.
type ShowCmd struct {
	Passage []string `arg:"" help:"Passage such as 'Gen 1:1-5', 'Psa 23' or 'Rth'"`
	RTL     bool     `name:"rtl" help:"Print Hebrew words right to left"`
}

func (c *ShowCmd) Run(a *app) error {
	ranges, err := parseRanges([]string{strings.Join(c.Passage, " ")})
	if err != nil {
		return err
	}
	r := ranges[0]

	corp, err := a.loadCorpus()
	if err != nil {
		return err
	}
	b, err := corp.Book(r.Book)
	if err != nil {
		return err
	}

	found := 0
	for _, v := range b.Verses {
		if !r.Contains(v.Ref) {
			continue
		}
		found++
		a.printf("%s\n", v.Ref)
		a.printVerse(v, corp.Translit, c.RTL)
	}
	if found == 0 {
		return errors.NewNotFound("passage", r.String())
	}
	return nil
}

// BooksCmd lists the stored books, or the canonical list.
type BooksCmd struct {
	Canonical bool `help:"List the canonical books instead of the database"`
}

func (c *BooksCmd) Run(a *app) error {
	if c.Canonical {
		for _, b := range corpus.Canonical() {
			a.printf("%d\t%s\t%s\t%s\t%d\n", b.Order, b.Code, b.Name, b.Collection, b.Chapters)
		}
		return nil
	}

	st, err := a.openStore(true, nil)
	if err != nil {
		return err
	}
	defer st.Close()

	books, err := st.Books(a.ctx)
	if err != nil {
		return err
	}
	for _, b := range books {
		a.printf("%s\t%s\t%d verses\n", b.Code, b.Name, b.Verses)
	}
	return nil
}

// IngestCmd tokenizes book files into the database.
type IngestCmd struct {
	Paths []string `arg:"" optional:"" help:"Book files, bundles or globs (default: the configured corpus)"`
}

func (c *IngestCmd) Run(a *app) error {
	patterns := c.Paths
	if len(patterns) == 0 && a.cfg.Corpus != "" {
		patterns = []string{a.cfg.Corpus}
	}
	if len(patterns) == 0 {
		return errors.NewValidation("corpus", "no book files given")
	}

	corp := a.newCorpus()
	for _, p := range patterns {
		if err := corp.LoadGlob(a.ctx, p); err != nil {
			return err
		}
	}
	corp.LogDiagnostics(a.ctx)

	st, err := a.openStore(false, corp.Translit)
	if err != nil {
		return err
	}
	defer st.Close()

	for _, b := range corp.Books() {
		changed, err := st.SaveBook(a.ctx, b)
		if err != nil {
			return err
		}
		logging.BookIngested(a.ctx, b.Code, len(b.Verses), changed)
		a.printf("%s\t%d verses\t%d changed\n", b.Code, len(b.Verses), changed)
	}
	if n := len(corp.Diagnostics()); n > 0 {
		a.printf("%d diagnostics logged\n", n)
	}
	return nil
}

// ExportCmd writes the stored books as a bundle of book files.
type ExportCmd struct {
	Out string `arg:"" help:"Output bundle (.tar.xz or .tar.gz)" type:"path"`
}

func (c *ExportCmd) Run(a *app) error {
	if !archive.IsBundle(c.Out) {
		return errors.NewUnsupported("archive format", c.Out)
	}
	st, err := a.openStore(true, nil)
	if err != nil {
		return err
	}
	defer st.Close()

	books, err := st.LoadAll(a.ctx)
	if err != nil {
		return err
	}
	entries := make([]archive.Entry, 0, len(books))
	for _, b := range books {
		data, err := corpus.EncodeBook(b)
		if err != nil {
			return err
		}
		entries = append(entries, archive.Entry{Name: b.Code + ".json", Data: data})
	}
	if err := archive.CreateBundle(c.Out, archive.BaseName(c.Out), entries); err != nil {
		return err
	}
	a.printf("wrote %d books to %s\n", len(entries), c.Out)
	return nil
}

func sqliteDescription() string {
	info := sqlite.GetInfo()
	return fmt.Sprintf("%s (%s, %s)", info.DriverName, info.DriverType, info.Package)
}

