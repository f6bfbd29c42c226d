package hebrew

import "testing"

func TestStripNiqqud(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ש\u05C1\u05B8לו\u05B9ם", "שלום"},
		{"ב\u05BC\u05B0ר\u05B5\u0596אש\u05C1\u05B4\u0596ית", "בראשית"},
		{"כ\u05BC\u05B8ל\u05BEה\u05B8", "כל\u05BEה"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		got := StripNiqqud(tt.in)
		if got != tt.want {
			t.Errorf("StripNiqqud(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if again := StripNiqqud(got); again != got {
			t.Errorf("StripNiqqud is not idempotent on %q: %q", got, again)
		}
	}
}

func TestStripCantillation(t *testing.T) {
	in := "ה\u05B8\u05BDא\u05B8\u05A3ר\u05B6ץ"
	want := "ה\u05B8א\u05B8ר\u05B6ץ"
	got := StripCantillation(in)
	if got != want {
		t.Errorf("StripCantillation(%q) = %q, want %q", in, got, want)
	}
	if StripCantillation(got) != got {
		t.Error("StripCantillation is not idempotent")
	}
	// Stripping never changes what is heard.
	if TransliterateString(in) != TransliterateString(got) {
		t.Errorf("transliteration changed after stripping: %q vs %q", TransliterateString(in), TransliterateString(got))
	}
}

func TestStripNiqqudRetransliterationIsStable(t *testing.T) {
	in := "ב\u05BC\u05B0ר\u05B5אש\u05C1\u05B4ית"
	once := TransliterateString(StripNiqqud(in))
	twice := TransliterateString(StripNiqqud(StripNiqqud(in)))
	if once != twice {
		t.Errorf("re-transliteration differs: %q vs %q", once, twice)
	}
}

func TestNormalizeDecomposesPresentationForms(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"\uFB2A", "ש\u05C1"},
		{"\uFB2B", "ש\u05C2"},
		{"\uFB35", "ו\u05BC"},
		{"\uFB4B", "ו\u05B9"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
