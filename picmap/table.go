package picmap

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/lvillar/palm"
)

// Roster column holding the picture folder (first data row only) and the
// picture file name.
const (
	dirColumn = 1
	picColumn = 2
)

// ReadTable reads a tab-separated file with '"' quoting.
func ReadTable(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, palm.NewError("ReadTable", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, palm.NewError("ReadTable", fmt.Errorf("%s: %w", path, err))
	}
	return rows, nil
}

// WriteTable writes rows as a tab-separated file.
func WriteTable(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return palm.NewError("WriteTable", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'
	if err := w.WriteAll(rows); err != nil {
		return palm.NewError("WriteTable", err)
	}
	return f.Close()
}

// FixRows returns a copy of rows whose picture column is replaced by the
// indexed file name. Row 0 is a header and is copied as is. Data rows whose
// picture is not indexed are left out of fixed and their indexes returned in
// missing.
func FixRows(rows [][]string, idx *Index) (fixed [][]string, missing []int) {
	if len(rows) == 0 {
		return nil, nil
	}
	fixed = append(fixed, slices.Clone(rows[0]))
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) <= picColumn {
			missing = append(missing, i)
			continue
		}
		rel, ok := idx.Lookup(rows[i][picColumn])
		if !ok {
			missing = append(missing, i)
			continue
		}
		row := slices.Clone(rows[i])
		row[picColumn] = rel
		fixed = append(fixed, row)
	}
	return fixed, missing
}

// Report summarises a FixTable run.
type Report struct {
	Rows      int
	Pics      int
	Conflicts int
	Missing   []int
}

// FixTable rewrites the roster at in to out with picture names that exist on
// disk. The picture folder is read from the first data row, relative to the
// roster's directory.
func FixTable(in, out string) (Report, error) {
	rows, err := ReadTable(in)
	if err != nil {
		return Report{}, err
	}
	if len(rows) < 2 || len(rows[1]) <= dirColumn {
		return Report{}, palm.NewError("FixTable", fmt.Errorf("%w: %s has no picture folder column", palm.ErrInvalidParam, in))
	}

	idx, err := Build(filepath.Join(filepath.Dir(in), rows[1][dirColumn]))
	if err != nil {
		return Report{}, err
	}
	fixed, missing := FixRows(rows, idx)
	if err := WriteTable(out, fixed); err != nil {
		return Report{}, err
	}
	return Report{
		Rows:      len(rows),
		Pics:      len(idx.Pics),
		Conflicts: len(idx.Conflicts),
		Missing:   missing,
	}, nil
}
