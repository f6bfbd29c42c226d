package verse

import "testing"

func TestParseRange(t *testing.T) {
	tests := []struct {
		in      string
		want    Range
		wantErr bool
	}{
		{"Gen", Range{Book: "Gen"}, false},
		{"Gen 1", Range{Book: "Gen", Chapter: 1}, false},
		{"Gen 1:1", Range{Book: "Gen", Chapter: 1, Verse: 1}, false},
		{"Gen.1.1", Range{Book: "Gen", Chapter: 1, Verse: 1}, false},
		{"1Sa 3:4-10", Range{Book: "1Sa", Chapter: 3, Verse: 4, End: 10}, false},
		{"  Psa 23  ", Range{Book: "Psa", Chapter: 23}, false},
		{"", Range{}, true},
		{"1", Range{}, true},
		{"Gen 1:5-2", Range{}, true},
		{"Gen 1:", Range{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRange(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRange(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseRange(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	tests := []struct {
		r    Range
		ref  Ref
		want bool
	}{
		{Range{Book: "Gen"}, Ref{"Gen", 50, 26}, true},
		{Range{Book: "gen"}, Ref{"Gen", 1, 1}, true},
		{Range{Book: "Exo"}, Ref{"Gen", 1, 1}, false},
		{Range{Book: "Gen", Chapter: 1}, Ref{"Gen", 1, 31}, true},
		{Range{Book: "Gen", Chapter: 1}, Ref{"Gen", 2, 1}, false},
		{Range{Book: "Gen", Chapter: 1, Verse: 3}, Ref{"Gen", 1, 3}, true},
		{Range{Book: "Gen", Chapter: 1, Verse: 3}, Ref{"Gen", 1, 4}, false},
		{Range{Book: "Gen", Chapter: 1, Verse: 3, End: 5}, Ref{"Gen", 1, 5}, true},
		{Range{Book: "Gen", Chapter: 1, Verse: 3, End: 5}, Ref{"Gen", 1, 6}, false},
	}
	for _, tt := range tests {
		if got := tt.r.Contains(tt.ref); got != tt.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", tt.r, tt.ref, got, tt.want)
		}
	}
}

func TestRangeString(t *testing.T) {
	for _, s := range []string{"Gen", "Gen 1", "Gen 1:1", "1Sa 3:4-10"} {
		r, err := ParseRange(s)
		if err != nil {
			t.Fatal(err)
		}
		if r.String() != s {
			t.Errorf("String() = %q, want %q", r.String(), s)
		}
	}
}
