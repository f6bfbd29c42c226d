package archive

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
)

func writeTarEntries(t *testing.T, w io.Writer, entries map[string]string) {
	t.Helper()
	tw := tar.NewWriter(w)
	if err := tw.WriteHeader(&tar.Header{Name: "corpus/", Mode: 0755, Typeflag: tar.TypeDir}); err != nil {
		t.Fatalf("write dir header: %v", err)
	}
	for _, name := range []string{"corpus/Gen.json", "corpus/README.txt"} {
		content, ok := entries[name]
		if !ok {
			continue
		}
		if err := tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0644,
			Size:     int64(len(content)),
			Typeflag: tar.TypeReg,
		}); err != nil {
			t.Fatalf("write header: %v", err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatalf("write content: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar: %v", err)
	}
}

var testEntries = map[string]string{
	"corpus/Gen.json":   `{"code":"Gen"}`,
	"corpus/README.txt": "books",
}

func createTestTarGz(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "corpus.tar.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	writeTarEntries(t, gw, testEntries)
	gw.Close()
	return path
}

func createTestTarXz(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "corpus.tar.xz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	defer f.Close()

	xw, err := xz.NewWriter(f)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	writeTarEntries(t, xw, testEntries)
	xw.Close()
	return path
}

func TestIsBundle(t *testing.T) {
	tests := map[string]bool{
		"books.tar.xz": true,
		"books.tar.gz": true,
		"Gen.json":     false,
		"Gen.json.xz":  false,
		"books.zip":    false,
	}
	for path, want := range tests {
		if got := IsBundle(path); got != want {
			t.Errorf("IsBundle(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestNewReader(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr error
	}{
		{
			name:  "tar.gz archive",
			setup: func(t *testing.T) string { return createTestTarGz(t, dir) },
		},
		{
			name:  "tar.xz archive",
			setup: func(t *testing.T) string { return createTestTarXz(t, dir) },
		},
		{
			name: "unsupported format",
			setup: func(t *testing.T) string {
				path := filepath.Join(dir, "test.zip")
				os.WriteFile(path, []byte("not a tar"), 0644)
				return path
			},
			wantErr: errors.ErrUnsupported,
		},
		{
			name:    "nonexistent file",
			setup:   func(t *testing.T) string { return filepath.Join(dir, "nonexistent.tar.gz") },
			wantErr: fs.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.setup(t))
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("NewReader() error = %v", err)
				}
				r.Close()
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewReader() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReaderIterate(t *testing.T) {
	for _, create := range []func(*testing.T, string) string{createTestTarGz, createTestTarXz} {
		path := create(t, t.TempDir())

		r, err := NewReader(path)
		if err != nil {
			t.Fatalf("NewReader: %v", err)
		}

		var names []string
		err = r.Iterate(func(header *tar.Header, _ io.Reader) (bool, error) {
			names = append(names, header.Name)
			return false, nil
		})
		r.Close()
		if err != nil {
			t.Errorf("Iterate: %v", err)
		}
		if len(names) != 3 {
			t.Errorf("%s: got %d entries, want 3: %v", filepath.Base(path), len(names), names)
		}
	}
}

func TestIterateBundleStops(t *testing.T) {
	path := createTestTarGz(t, t.TempDir())

	var count int
	err := IterateBundle(path, func(*tar.Header, io.Reader) (bool, error) {
		count++
		return count == 2, nil
	})
	if err != nil {
		t.Errorf("IterateBundle: %v", err)
	}
	if count != 2 {
		t.Errorf("visited %d entries, want 2", count)
	}
}

func TestContainsPath(t *testing.T) {
	path := createTestTarXz(t, t.TempDir())

	tests := []struct {
		name      string
		predicate func(string) bool
		want      bool
	}{
		{"book file", func(name string) bool { return filepath.Ext(name) == ".json" }, true},
		{"directory", func(name string) bool { return name == "corpus/" }, true},
		{"missing", func(name string) bool { return name == "Exo.json" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContainsPath(path, tt.predicate)
			if err != nil {
				t.Fatalf("ContainsPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ContainsPath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := createTestTarGz(t, t.TempDir())

	tests := []struct {
		name     string
		filename string
		want     string
		wantErr  bool
	}{
		{"without leading directory", "Gen.json", `{"code":"Gen"}`, false},
		{"with leading directory", "corpus/README.txt", "books", false},
		{"not found", "Exo.json", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(path, tt.filename)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrNotFound) {
				t.Errorf("ReadFile() error = %v, want not found", err)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindFile(t *testing.T) {
	path := createTestTarGz(t, t.TempDir())

	data, name, err := FindFile(path, func(name string) bool { return filepath.Ext(name) == ".txt" })
	if err != nil {
		t.Fatalf("FindFile() error = %v", err)
	}
	if name != "corpus/README.txt" || string(data) != "books" {
		t.Errorf("FindFile() = %q, %q", data, name)
	}

	if _, _, err := FindFile(path, func(name string) bool { return filepath.Ext(name) == ".xml" }); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("FindFile(no match) error = %v", err)
	}
}

func TestReadAll(t *testing.T) {
	path := createTestTarXz(t, t.TempDir())

	files, err := ReadAll(path, func(name string) bool { return filepath.Ext(name) == ".json" })
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(files) != 1 || string(files["Gen.json"]) != `{"code":"Gen"}` {
		t.Errorf("ReadAll() = %v", files)
	}

	all, err := ReadAll(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("ReadAll(nil) returned %d files, want 2", len(all))
	}
}

func TestNewReader_CorruptedGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.tar.gz")
	if err := os.WriteFile(path, []byte("not a gzip file"), 0644); err != nil {
		t.Fatalf("create file: %v", err)
	}
	if _, err := NewReader(path); err == nil {
		t.Error("NewReader() expected error for corrupted gzip")
	}
}
