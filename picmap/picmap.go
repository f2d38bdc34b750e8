// Package picmap indexes a photo folder by picture name so that references
// with the wrong file extension ("ann.jpg" when the folder has "ann.png") can
// be repaired, both while laying out and in tab-separated roster files.
package picmap

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/lvillar/palm"
	"github.com/lvillar/palm/logging"
)

// DefaultFormats are the extensions indexed when Build gets none.
var DefaultFormats = []string{"png", "jpg", "jpeg"}

// Index maps picture names to files below Root.
type Index struct {
	Root string
	// Pics maps a picture name (the file name up to its first ".") to the
	// file's path relative to Root. When several files share a name the
	// last one in walk order wins.
	Pics map[string]string
	// Conflicts lists every path of names that occur more than once.
	Conflicts map[string][]string
}

// Build walks dir and indexes every file whose extension (everything after
// the first ".") is one of formats, compared case-insensitively.
func Build(dir string, formats ...string) (*Index, error) {
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	idx := &Index{
		Root:      dir,
		Pics:      make(map[string]string),
		Conflicts: make(map[string][]string),
	}

	err := filepath.WalkDir(dir, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if e.IsDir() {
			return nil
		}
		name, ext, ok := strings.Cut(e.Name(), ".")
		if !ok || !slices.Contains(formats, strings.ToLower(ext)) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		idx.add(name, rel)
		return nil
	})
	if err != nil {
		return nil, palm.NewError("Build", err)
	}

	logging.Logger().Debug("pictures indexed", "dir", dir, "pics", len(idx.Pics), "conflicts", len(idx.Conflicts))
	return idx, nil
}

func (idx *Index) add(name, rel string) {
	if prev, ok := idx.Pics[name]; ok {
		if _, seen := idx.Conflicts[name]; !seen {
			idx.Conflicts[name] = []string{prev}
		}
		idx.Conflicts[name] = append(idx.Conflicts[name], rel)
	}
	idx.Pics[name] = rel
}

// Lookup returns the indexed path, relative to Root, of the picture named
// like file (extension ignored).
func (idx *Index) Lookup(file string) (string, bool) {
	name, _, _ := strings.Cut(filepath.Base(file), ".")
	rel, ok := idx.Pics[name]
	return rel, ok
}

// FixExtension implements palm.ExtensionFixer. Existing files are returned
// unchanged; otherwise the indexed file with the same picture name is
// returned, or path itself when there is none.
func (idx *Index) FixExtension(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	rel, ok := idx.Lookup(path)
	if !ok {
		return path
	}
	fixed := filepath.Join(idx.Root, rel)
	logging.Logger().Debug("picture extension fixed", "from", path, "to", fixed)
	return fixed
}
