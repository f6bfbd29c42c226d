package archive

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
)

// Entry is one file to be written into a bundle.
type Entry struct {
	Name string
	Data []byte
}

// Entries are stamped with a fixed time so identical inputs give
// byte-identical bundles.
var bundleTime = time.Unix(0, 0).UTC()

// CreateBundle writes entries to dstPath under baseDir. The compression is
// chosen from the suffix of dstPath. Parent directories are created and
// entries are written in name order.
func CreateBundle(dstPath, baseDir string, entries []Entry) error {
	if !IsBundle(dstPath) {
		return errors.NewUnsupported("archive format", dstPath)
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return errors.NewIO("mkdir", filepath.Dir(dstPath), err)
	}

	out, err := os.Create(dstPath)
	if err != nil {
		return errors.NewIO("create", dstPath, err)
	}

	sorted := append([]Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	werr := writeCompressed(out, dstPath, func(tw *tar.Writer) error {
		for _, e := range sorted {
			name := e.Name
			if baseDir != "" {
				name = baseDir + "/" + e.Name
			}
			hdr := &tar.Header{
				Name:     name,
				Mode:     0o644,
				Size:     int64(len(e.Data)),
				ModTime:  bundleTime,
				Typeflag: tar.TypeReg,
			}
			if err := tw.WriteHeader(hdr); err != nil {
				return err
			}
			if _, err := tw.Write(e.Data); err != nil {
				return err
			}
		}
		return nil
	})
	if cerr := out.Close(); werr == nil && cerr != nil {
		werr = cerr
	}
	if werr != nil {
		return errors.NewIO("write", dstPath, werr)
	}
	return nil
}

// CreateBundleFromDir bundles every regular file under srcDir whose
// relative path is accepted by keep (nil keeps all). The base directory
// inside the bundle is derived from dstPath.
func CreateBundleFromDir(srcDir, dstPath string, keep func(rel string) bool) error {
	var entries []Entry
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if keep != nil && !keep(rel) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{Name: rel, Data: data})
		return nil
	})
	if err != nil {
		return errors.NewIO("walk", srcDir, err)
	}
	return CreateBundle(dstPath, BaseName(dstPath), entries)
}

// BaseName returns the bundle name without its archive suffix.
func BaseName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".tar.xz")
	return strings.TrimSuffix(base, ".tar.gz")
}

func writeCompressed(w io.Writer, path string, body func(*tar.Writer) error) error {
	var zw io.WriteCloser
	if strings.HasSuffix(path, ".tar.xz") {
		xw, err := xz.NewWriter(w)
		if err != nil {
			return err
		}
		zw = xw
	} else {
		zw = gzip.NewWriter(w)
	}

	tw := tar.NewWriter(zw)
	if err := body(tw); err != nil {
		tw.Close()
		zw.Close()
		return err
	}
	if err := tw.Close(); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
