package main

import (
	"sort"
	"strings"

	"github.com/FocuswithJustin/JuniperHebrew/core/hebrew"
	"github.com/FocuswithJustin/JuniperHebrew/core/verse"
)

// renderTokens joins token labels and their separators, bracketing
// highlighted tokens.
func renderTokens(tokens []verse.Token, label, space func(verse.Token) string) string {
	var sb strings.Builder
	for _, t := range tokens {
		if t.Highlighted {
			sb.WriteString("[" + label(t) + "]")
		} else {
			sb.WriteString(label(t))
		}
		sb.WriteString(space(t))
	}
	return strings.TrimSpace(sb.String())
}

// renderSpans brackets the spans of text. Spans are sorted and
// non-overlapping.
func renderSpans(text string, spans []verse.Span) string {
	spans = append([]verse.Span(nil), spans...)
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	var sb strings.Builder
	last := 0
	for _, s := range spans {
		if s.Start < last || s.End > len(text) {
			continue
		}
		sb.WriteString(text[last:s.Start])
		sb.WriteString("[" + text[s.Start:s.End] + "]")
		last = s.End
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// verseLines returns the Hebrew, transliteration and English lines of v.
func verseLines(v *verse.Verse, translit func(string) string, rtl bool) (he, tr, en string) {
	he = renderTokens(v.Tokens,
		func(t verse.Token) string { return t.Word },
		func(t verse.Token) string { return t.Space })
	if rtl {
		he = hebrew.ReverseWords(he)
	}
	tr = renderTokens(v.Tokens,
		func(t verse.Token) string { return translit(t.Word) },
		func(t verse.Token) string { return translit(t.Space) })
	en = renderSpans(v.English, v.EnglishHighlights)
	return he, tr, en
}

func (a *app) printVerse(v *verse.Verse, translit func(string) string, rtl bool) {
	he, tr, en := verseLines(v, translit, rtl)
	a.printf("  %s\n", he)
	a.printf("  %s\n", tr)
	if en != "" {
		a.printf("  %s\n", en)
	}
}
