package palm

import (
	"encoding/json"
	"io"
	"os"

	"github.com/lvillar/palm/logging"
)

// Parse decodes a JSON layout descriptor. A missing "pages" or "elems" key
// yields an empty slice; nothing else is validated here.
func Parse(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &d, nil
}

// Load reads and decodes a layout descriptor from r.
func Load(r io.Reader) (*Descriptor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return Parse(data)
}

// LoadFile reads and decodes the layout descriptor stored at path.
func LoadFile(path string) (*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	logging.Logger().Debug("layout loaded", "path", path, "pages", len(d.Pages))
	return d, nil
}
