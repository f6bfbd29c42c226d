package hebrew

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Category
		id   string
	}{
		{"alef", 'א', Consonant, "alef"},
		{"tav", 'ת', Consonant, "tav"},
		{"final kaf", 'ך', FinalConsonant, "final-kaf"},
		{"final mem", 'ם', FinalConsonant, "final-mem"},
		{"final nun", 'ן', FinalConsonant, "final-nun"},
		{"final pe", 'ף', FinalConsonant, "final-pe"},
		{"final tsadi", 'ץ', FinalConsonant, "final-tsadi"},
		{"sheva", '\u05B0', Niqqud, "sheva"},
		{"dagesh", '\u05BC', Niqqud, "dagesh"},
		{"qamats qatan", '\u05C7', Niqqud, "qamats-qatan"},
		{"etnahta", '\u0591', Cantillation, "etnahta"},
		{"masora circle", '\u05AF', Cantillation, "masora-circle"},
		{"meteg", '\u05BD', SilentModifier, "meteg"},
		{"rafe", '\u05BF', SilentModifier, "rafe"},
		{"shin dot", '\u05C1', SilentModifier, "shin-dot"},
		{"sin dot", '\u05C2', SilentModifier, "sin-dot"},
		{"upper dot", '\u05C4', SilentModifier, "upper-dot"},
		{"lower dot", '\u05C5', SilentModifier, "lower-dot"},
		{"maqaf", '\u05BE', Punctuation, "maqaf"},
		{"paseq", '\u05C0', Punctuation, "paseq"},
		{"sof pasuq", '\u05C3', Punctuation, "sof-pasuq"},
		{"reversed nun", '\u05C6', Punctuation, "nun-hafukha"},
		{"latin", 'a', PassThrough, ""},
		{"space", ' ', PassThrough, ""},
		{"geresh", '\u05F3', PassThrough, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.r)
			if got.Category != tt.want {
				t.Errorf("Classify(%U).Category = %v, want %v", tt.r, got.Category, tt.want)
			}
			if got.Name != tt.id {
				t.Errorf("Classify(%U).Name = %q, want %q", tt.r, got.Name, tt.id)
			}
		})
	}
}

func TestClassifyCoversConsonantBlock(t *testing.T) {
	for r := 'א'; r <= 'ת'; r++ {
		cat := Classify(r).Category
		if cat != Consonant && cat != FinalConsonant {
			t.Errorf("Classify(%U) = %v, want a consonant", r, cat)
		}
	}
	for r := '\u0591'; r <= '\u05AF'; r++ {
		if cat := Classify(r).Category; cat != Cantillation {
			t.Errorf("Classify(%U) = %v, want cantillation", r, cat)
		}
	}
}

func TestCategoryPredicates(t *testing.T) {
	starts := map[Category]bool{
		PassThrough:    true,
		Consonant:      true,
		FinalConsonant: true,
		Punctuation:    true,
		Niqqud:         false,
		Cantillation:   false,
		SilentModifier: false,
	}
	for cat, want := range starts {
		if got := cat.StartsClump(); got != want {
			t.Errorf("%v.StartsClump() = %v, want %v", cat, got, want)
		}
		if got := cat.IsMark(); got == want {
			t.Errorf("%v.IsMark() = %v, want %v", cat, got, !want)
		}
	}
	if got := Category(99).String(); got != "unknown" {
		t.Errorf("Category(99).String() = %q, want unknown", got)
	}
}

func TestIsUnmapped(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'א', false},
		{'a', false},
		{'\u05C8', true},
		{'\u05F3', true},
		{'\u0590', true},
	}
	for _, tt := range tests {
		if got := IsUnmapped(tt.r); got != tt.want {
			t.Errorf("IsUnmapped(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}
