package picmap

import (
	"os"
	"path/filepath"

	"github.com/lvillar/palm/logging"
)

// Fixer repairs picture paths in any folder, indexing each folder the first
// time a picture from it is missing.
type Fixer struct {
	formats []string
	indexes map[string]*Index // nil entry: folder could not be indexed
}

// NewFixer returns a Fixer indexing the given formats (DefaultFormats when
// empty).
func NewFixer(formats ...string) *Fixer {
	return &Fixer{formats: formats, indexes: make(map[string]*Index)}
}

// FixExtension implements palm.ExtensionFixer.
func (f *Fixer) FixExtension(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	dir := filepath.Dir(path)
	idx, ok := f.indexes[dir]
	if !ok {
		var err error
		idx, err = Build(dir, f.formats...)
		if err != nil {
			logging.Logger().Debug("picture folder not indexed", "dir", dir, "err", err)
			idx = nil
		}
		f.indexes[dir] = idx
	}
	if idx == nil {
		return path
	}
	return idx.FixExtension(path)
}
