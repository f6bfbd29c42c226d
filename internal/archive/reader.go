// Package archive reads and writes compressed tar bundles of book files.
// Bundles are .tar.xz (the default for distributed corpora) or .tar.gz.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
)

// IsBundle reports whether path names a supported bundle.
func IsBundle(path string) bool {
	return strings.HasSuffix(path, ".tar.xz") || strings.HasSuffix(path, ".tar.gz")
}

// Reader wraps a tar.Reader with automatic decompression handling.
type Reader struct {
	*tar.Reader
	file         *os.File
	decompressor io.Closer
}

// NewReader opens the bundle at path, choosing the decompressor from its
// suffix.
func NewReader(path string) (*Reader, error) {
	if !IsBundle(path) {
		return nil, errors.NewUnsupported("archive format", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}

	var reader io.Reader
	var decompressor io.Closer

	if strings.HasSuffix(path, ".tar.xz") {
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.NewIO("xz", path, err)
		}
		reader = xzr
	} else {
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.NewIO("gzip", path, err)
		}
		reader = gzr
		decompressor = gzr
	}

	return &Reader{
		Reader:       tar.NewReader(reader),
		file:         f,
		decompressor: decompressor,
	}, nil
}

// Close closes the archive reader and any underlying decompressors.
func (r *Reader) Close() error {
	var errs []error
	if r.decompressor != nil {
		errs = append(errs, r.decompressor.Close())
	}
	errs = append(errs, r.file.Close())
	return errors.Join(errs...)
}

// Visitor is called for each archive entry.
// Return true to stop iteration, false to continue.
type Visitor func(header *tar.Header, content io.Reader) (stop bool, err error)

// Iterate walks through all entries in the archive, calling the visitor for each.
func (r *Reader) Iterate(visitor Visitor) error {
	for {
		header, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read header")
		}

		stop, err := visitor(header, r)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}

// IterateBundle opens a bundle and iterates through its entries.
func IterateBundle(path string, visitor Visitor) error {
	r, err := NewReader(path)
	if err != nil {
		return err
	}
	defer r.Close()
	return r.Iterate(visitor)
}

// ContainsPath checks if the archive contains a path matching the predicate.
func ContainsPath(path string, predicate func(name string) bool) (bool, error) {
	var found bool
	err := IterateBundle(path, func(header *tar.Header, _ io.Reader) (bool, error) {
		if predicate(header.Name) {
			found = true
			return true, nil
		}
		return false, nil
	})
	return found, err
}

// entryName strips the bundle's leading directory, if any.
func entryName(name string) string {
	if idx := strings.Index(name, "/"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

// ReadFile reads a specific file from the archive. The name may be given
// with or without the bundle's leading directory.
func ReadFile(archivePath, filename string) ([]byte, error) {
	var content []byte
	var found bool
	err := IterateBundle(archivePath, func(header *tar.Header, r io.Reader) (bool, error) {
		if header.Name == filename || entryName(header.Name) == filename {
			var err error
			content, err = io.ReadAll(r)
			found = true
			return true, err
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFound("bundle entry", filename)
	}
	return content, nil
}

// FindFile finds the first file matching the predicate and returns its content.
func FindFile(archivePath string, predicate func(name string) bool) ([]byte, string, error) {
	var content []byte
	var foundName string
	err := IterateBundle(archivePath, func(header *tar.Header, r io.Reader) (bool, error) {
		if header.Typeflag == tar.TypeReg && predicate(header.Name) {
			var err error
			content, err = io.ReadAll(r)
			foundName = header.Name
			return true, err
		}
		return false, nil
	})
	if err != nil {
		return nil, "", err
	}
	if foundName == "" {
		return nil, "", errors.NewNotFound("bundle entry", archivePath)
	}
	return content, foundName, nil
}

// ReadAll returns every regular file in the bundle accepted by keep,
// keyed by its name without the leading directory.
func ReadAll(archivePath string, keep func(name string) bool) (map[string][]byte, error) {
	files := make(map[string][]byte)
	err := IterateBundle(archivePath, func(header *tar.Header, r io.Reader) (bool, error) {
		if header.Typeflag != tar.TypeReg {
			return false, nil
		}
		name := entryName(header.Name)
		if keep != nil && !keep(name) {
			return false, nil
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return true, errors.NewIO("read", header.Name, err)
		}
		files[name] = data
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
