package main

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/JuniperHebrew/core/hebrew"
	"github.com/FocuswithJustin/JuniperHebrew/core/verse"
	"github.com/FocuswithJustin/JuniperHebrew/internal/logging"
)

// prepare normalizes text and drops cantillation.
func prepare(text string) string {
	return hebrew.StripCantillation(hebrew.Normalize(text))
}

// logDiagnostics logs every error inside a joined error.
func logDiagnostics(a *app, err error, args ...any) {
	if err == nil {
		return
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range j.Unwrap() {
			logDiagnostics(a, e, args...)
		}
		return
	}
	logging.Diagnostic(a.ctx, err, args...)
}

// TranslitCmd transliterates Hebrew text.
type TranslitCmd struct {
	Text    []string `arg:"" help:"Hebrew text"`
	Reverse bool     `help:"Print the words in reverse order"`
}

func (c *TranslitCmd) Run(a *app) error {
	text := strings.Join(c.Text, " ")
	cs, diags := hebrew.ClumpsWithDiagnostics(hebrew.Normalize(text))
	out, tdiags := hebrew.Default().TransliterateWithDiagnostics(cs)
	for _, d := range append(diags, tdiags...) {
		logging.Diagnostic(a.ctx, d)
	}
	if c.Reverse {
		out = hebrew.ReverseWords(out)
	}
	a.printf("%s\n", out)
	return nil
}

// ClumpCmd prints one line per grapheme clump.
type ClumpCmd struct {
	Text string `arg:"" help:"Hebrew text"`
}

func (c *ClumpCmd) Run(a *app) error {
	t := hebrew.Default()
	for i, cl := range hebrew.Clumps(hebrew.Normalize(c.Text)) {
		a.printf("%d\t%s\t%s\t%s\t%s\n", i, cl.String(), cl.Class().Category, cl.Class().Name, t.TransliterateClump(cl))
	}
	return nil
}

// ClassifyCmd prints the class of every code point.
type ClassifyCmd struct {
	Text string `arg:"" help:"Text to classify"`
}

func (c *ClassifyCmd) Run(a *app) error {
	for _, r := range c.Text {
		cl := hebrew.Classify(r)
		category := cl.Category.String()
		if hebrew.IsUnmapped(r) {
			category = "unmapped"
		}
		a.printf("U+%04X\t%s\t%s\n", r, category, cl.Name)
	}
	return nil
}

// TokenizeCmd prints the tokens of a verse.
type TokenizeCmd struct {
	Text []string `arg:"" help:"Hebrew verse"`
}

func (c *TokenizeCmd) Run(a *app) error {
	tokens, err := verse.Tokenize(prepare(strings.Join(c.Text, " ")))
	logDiagnostics(a, err)
	for i, t := range tokens {
		a.printf("%d\t%s\t%s\t%s\t%s\n", i, t.Word, strconv.Quote(t.Space), t.Consonantal, t.Translit())
	}
	return nil
}

// StripCmd removes marks from text.
type StripCmd struct {
	Text   []string `arg:"" help:"Hebrew text"`
	Niqqud bool     `help:"Remove niqqud as well, leaving consonants"`
}

func (c *StripCmd) Run(a *app) error {
	text := hebrew.Normalize(strings.Join(c.Text, " "))
	if c.Niqqud {
		text = hebrew.StripNiqqud(text)
	} else {
		text = hebrew.StripCantillation(text)
	}
	a.printf("%s\n", text)
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	a.printf("hebrew version %s\n", version)
	a.printf("sqlite driver: %s\n", sqliteDescription())
	return nil
}
