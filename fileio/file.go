package fileio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/spc-group/go-xdi/xdi"
)

// Ext returns the format extension of path in lower case, looking
// through a trailing ".gz" compression suffix: "scan.XDI.gz" -> ".xdi".
func Ext(path string) string {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, ".gz") {
		ext = filepath.Ext(strings.TrimSuffix(path, ext))
	}
	return strings.ToLower(ext)
}

// CanOpen reports whether path carries an extension registered with a
// format codec.
func CanOpen(path string) bool {
	_, ok := Lookup(Ext(path))
	return ok
}

// ReadFile loads a dataset from the file at path, picking the codec by
// extension and decompressing ".gz" files transparently.
func ReadFile(path string) (*xdi.Dataset, error) {
	format, ok := Lookup(Ext(path))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if isGzip(path) {
		raw, err = gunzip(raw)
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
	}

	return format.Load(string(raw))
}

// WriteFile serializes a dataset to the file at path, picking the codec
// by extension and compressing ".gz" files transparently.
func WriteFile(path string, ds *xdi.Dataset) error {
	format, ok := Lookup(Ext(path))
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	text, err := format.Dump(ds)
	if err != nil {
		return err
	}

	raw := []byte(text)
	if isGzip(path) {
		raw, err = gzipBytes(raw)
		if err != nil {
			return fmt.Errorf("compress %s: %w", path, err)
		}
	}

	return os.WriteFile(path, raw, 0o644)
}

func isGzip(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".gz")
}

func gunzip(raw []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

func gzipBytes(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
