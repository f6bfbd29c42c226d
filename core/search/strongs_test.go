package search

import (
	"testing"

	"github.com/FocuswithJustin/JuniperHebrew/core/verse"
)

func TestIsStrongs(t *testing.T) {
	tests := map[string]bool{
		"H7225":  true,
		"h7225":  true,
		" G26 ":  true,
		"H":      false,
		"H72a":   false,
		"bara":   false,
		"X1234":  false,
		"H 7225": false,
	}
	for in, want := range tests {
		if got := IsStrongs(in); got != want {
			t.Errorf("IsStrongs(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStrongsMatchTokens(t *testing.T) {
	tokens := []verse.Token{
		{Word: "a", Strongs: "H7225"},
		{Word: "b", Strongs: "H1254"},
		{Word: "c", Strongs: "H72250"},
		{Word: "d"},
		{Word: "e", Strongs: "h7225"},
	}
	s, err := CompileStrongs("h7225")
	if err != nil {
		t.Fatal(err)
	}
	if s.ID() != "H7225" {
		t.Errorf("ID() = %q", s.ID())
	}
	if got := s.MatchTokens(tokens); got != 2 {
		t.Errorf("MatchTokens() = %d, want 2", got)
	}
	if got := highlighted(tokens); len(got) != 2 || got[0] != 0 || got[1] != 4 {
		t.Errorf("highlighted = %v, want [0 4]", got)
	}
}

func TestStrongsIgnoresEnglish(t *testing.T) {
	v := &verse.Verse{Tokens: []verse.Token{{Word: "a", Strongs: "H1"}}, English: "H1"}
	s, _ := CompileStrongs("H1")
	if got := s.MatchVerse(v, LangEnglish); got != 0 {
		t.Errorf("MatchVerse(en) = %d, want 0", got)
	}
	if got := s.MatchVerse(v, LangAll); got != 1 {
		t.Errorf("MatchVerse(all) = %d, want 1", got)
	}
}

func TestCompileStrongsInvalid(t *testing.T) {
	if _, err := CompileStrongs("bara"); err == nil {
		t.Error("CompileStrongs(bara) should fail")
	}
}

func TestParse(t *testing.T) {
	m, err := Parse("H430")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.(*Strongs); !ok {
		t.Errorf("Parse(H430) = %T, want *Strongs", m)
	}
	m, err = Parse("elohim")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.(*Pattern); !ok {
		t.Errorf("Parse(elohim) = %T, want *Pattern", m)
	}
}
