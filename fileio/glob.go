package fileio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spc-group/go-xdi/logger"
	"github.com/spc-group/go-xdi/xdi"
)

// ReadGlob loads every recognized data file whose name starts with the
// name stub of base, in lexical order.
//
// When base names an existing file only that file is read. When it
// names a directory, every recognized file in it is read. Otherwise the
// parent directory of base is scanned for files sharing its name stub,
// the way beamline software numbers sibling scan files. Files with an
// unregistered extension are skipped.
func ReadGlob(base string) ([]*xdi.Dataset, error) {
	dir := filepath.Dir(base)
	stub := filepath.Base(base)

	info, err := os.Stat(base)
	if err == nil {
		if !info.IsDir() {
			ds, err := ReadFile(base)
			if err != nil {
				return nil, err
			}
			return []*xdi.Dataset{ds}, nil
		}
		dir, stub = base, ""
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var datasets []*xdi.Dataset
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), stub) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !CanOpen(path) {
			logger.Debug("skipping unrecognized file", "path", path)
			continue
		}
		ds, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}

	return datasets, nil
}
