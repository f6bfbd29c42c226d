package corpus

import (
	"reflect"
	"testing"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
)

func TestCanonical(t *testing.T) {
	books := Canonical()
	if len(books) != 39 {
		t.Fatalf("len(Canonical()) = %d, want 39", len(books))
	}
	if books[0].Code != "Gen" || books[38].Code != "2Ch" {
		t.Errorf("first/last = %s/%s", books[0].Code, books[38].Code)
	}

	counts := map[Collection]int{}
	for i, b := range books {
		if b.Order != i+1 {
			t.Errorf("%s order = %d, want %d", b.Code, b.Order, i+1)
		}
		counts[b.Collection]++
	}
	want := map[Collection]int{Torah: 5, Neviim: 21, Ketuvim: 13}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("collections = %v, want %v", counts, want)
	}

	books[0].Code = "changed"
	if Canonical()[0].Code != "Gen" {
		t.Error("Canonical() exposes the shared list")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"Gen", "Gen"},
		{"genesis", "Gen"},
		{"GE", "Gen"},
		{"1 Samuel", "1Sa"},
		{"1sam", "1Sa"},
		{"sam2", "2Sa"},
		{"1Ch", "1Ch"},
		{"jo", "Jos"},
		{"job", "Job"},
		{"joel", "Joe"},
		{"jon", "Jon"},
		{"jdg", "Jdg"},
		{"judg", "Jdg"},
		{"song of songs", "Sng"},
		{"ps", "Psa"},
		{"ez", "Eze"},
		{"ezr", "Ezr"},
		{" Ruth ", "Rth"},
	}
	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			got, err := Resolve(tt.alias)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.alias, err)
			}
			if got.Code != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.alias, got.Code, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "x", "matthew", "genesisx"} {
		if _, err := Resolve(bad); !errors.Is(err, errors.ErrNotFound) {
			t.Errorf("Resolve(%q) error = %v, want not found", bad, err)
		}
	}
}

func TestParseBookFilter(t *testing.T) {
	tests := []struct {
		filter  string
		want    []string
		wantErr bool
	}{
		{"", nil, false},
		{"Gen", []string{"Gen"}, false},
		{"Gen-Deu", []string{"Gen", "Exo", "Lev", "Num", "Deu"}, false},
		{"Gen,Psa", []string{"Gen", "Psa"}, false},
		{"Psa, gen ,Gen", []string{"Psa", "Gen"}, false},
		{"Hag-Mal,Exo", []string{"Hag", "Zec", "Mal", "Exo"}, false},
		{"Deu-Gen", nil, true},
		{"Gen-Foo", nil, true},
		{"Foo", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			got, err := ParseBookFilter(tt.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBookFilter(%q) error = %v, wantErr %v", tt.filter, err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseBookFilter(%q) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}

	if _, err := ParseBookFilter("Deu-Gen"); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("backwards range error = %v, want invalid input", err)
	}
}
