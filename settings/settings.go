// Package settings reads palm settings files. A settings file collects what
// would otherwise be picked by hand before each run: the layout, the target
// document, the photo folders, the layer and the paragraph styles.
//
//	layout       = "layout.json"
//	document     = "yearbook.pdf"
//	output       = "yearbook-laid-out.pdf"
//	layer        = "Photos"
//	pics         = "${config_dir}/originals"
//	updated_pics = "retouched"
//	style        = "caption"
//	on_error     = "continue"
//
//	paragraph_style "caption" {
//	  font  = "Helvetica"
//	  face  = "B"
//	  size  = 9
//	  color = [40, 40, 40]
//	}
//
// Relative paths are resolved against the directory of the settings file,
// which expressions can also reach as config_dir.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/lvillar/palm"
	"github.com/lvillar/palm/logging"
	"github.com/lvillar/palm/pdfcanvas"
)

// Settings is a decoded settings file.
type Settings struct {
	Dir string // directory relative paths were resolved against

	Layout        string
	Document      string
	Output        string
	Layer         string
	Pics          string
	UpdatedPics   string
	PicsDir       string
	Style         string
	OnError       palm.FailureMode
	Barcodes      bool
	FixExtensions bool

	Styles map[string]pdfcanvas.Style
}

type hclFile struct {
	Layout        string          `hcl:"layout,optional"`
	Document      string          `hcl:"document,optional"`
	Output        string          `hcl:"output,optional"`
	Layer         string          `hcl:"layer,optional"`
	Pics          string          `hcl:"pics,optional"`
	UpdatedPics   string          `hcl:"updated_pics,optional"`
	PicsDir       string          `hcl:"pics_dir,optional"`
	Style         string          `hcl:"style,optional"`
	OnError       string          `hcl:"on_error,optional"`
	Barcodes      bool            `hcl:"barcodes,optional"`
	FixExtensions bool            `hcl:"fix_extensions,optional"`
	Styles        []hclStyleBlock `hcl:"paragraph_style,block"`
}

type hclStyleBlock struct {
	Name       string  `hcl:"name,label"`
	Font       string  `hcl:"font,optional"`
	Face       string  `hcl:"face,optional"`
	Size       float64 `hcl:"size,optional"`
	LineHeight float64 `hcl:"line_height,optional"`
	Color      []int   `hcl:"color,optional"`
	Align      string  `hcl:"align,optional"`
}

// Load reads the settings file at path.
func Load(path string) (*Settings, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, palm.NewError("LoadSettings", err)
	}
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, palm.NewError("LoadSettings", err)
	}
	s, err := Parse(src, path, dir)
	if err != nil {
		return nil, err
	}
	logging.Logger().Debug("settings loaded", "path", path, "styles", len(s.Styles))
	return s, nil
}

// Parse decodes settings from src. filename is used in diagnostics and dir
// is the base of relative paths.
func Parse(src []byte, filename, dir string) (*Settings, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, palm.NewError("LoadSettings", fmt.Errorf("failed to parse %s: %w", filename, diags))
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"config_dir": cty.StringVal(dir),
		},
	}
	var raw hclFile
	if diags := gohcl.DecodeBody(f.Body, ctx, &raw); diags.HasErrors() {
		return nil, palm.NewError("LoadSettings", fmt.Errorf("failed to decode %s: %w", filename, diags))
	}

	s, err := raw.settings(dir)
	if err != nil {
		return nil, palm.NewError("LoadSettings", fmt.Errorf("%s: %w", filename, err))
	}
	return s, nil
}

func (f *hclFile) settings(dir string) (*Settings, error) {
	s := &Settings{
		Dir:           dir,
		Layout:        resolve(dir, f.Layout),
		Document:      resolve(dir, f.Document),
		Output:        resolve(dir, f.Output),
		Layer:         f.Layer,
		Pics:          resolve(dir, f.Pics),
		UpdatedPics:   resolve(dir, f.UpdatedPics),
		PicsDir:       resolve(dir, f.PicsDir),
		Style:         f.Style,
		Barcodes:      f.Barcodes,
		FixExtensions: f.FixExtensions,
		Styles:        make(map[string]pdfcanvas.Style, len(f.Styles)),
	}

	mode, err := ParseFailureMode(f.OnError)
	if err != nil {
		return nil, err
	}
	s.OnError = mode

	for _, b := range f.Styles {
		if _, dup := s.Styles[b.Name]; dup {
			return nil, fmt.Errorf("%w: paragraph_style %q declared twice", palm.ErrInvalidParam, b.Name)
		}
		st, err := b.style()
		if err != nil {
			return nil, err
		}
		s.Styles[b.Name] = st
	}
	if s.Style != "" {
		if _, ok := s.Styles[s.Style]; !ok {
			return nil, fmt.Errorf("%w: %q", palm.ErrUnknownStyle, s.Style)
		}
	}
	return s, nil
}

func (b hclStyleBlock) style() (pdfcanvas.Style, error) {
	st := pdfcanvas.Style{
		Font:       b.Font,
		Face:       strings.ToUpper(b.Face),
		Size:       b.Size,
		LineHeight: b.LineHeight,
		Align:      strings.ToUpper(b.Align),
	}
	if strings.Trim(st.Face, "BIU") != "" {
		return st, fmt.Errorf("%w: paragraph_style %q: face %q", palm.ErrInvalidParam, b.Name, b.Face)
	}
	switch st.Align {
	case "", "L", "C", "R", "J":
	default:
		return st, fmt.Errorf("%w: paragraph_style %q: align %q", palm.ErrInvalidParam, b.Name, b.Align)
	}
	if st.Size < 0 || st.LineHeight < 0 {
		return st, fmt.Errorf("%w: paragraph_style %q: negative size", palm.ErrInvalidParam, b.Name)
	}
	switch len(b.Color) {
	case 0:
	case 3:
		for i, c := range b.Color {
			if c < 0 || c > 255 {
				return st, fmt.Errorf("%w: paragraph_style %q: color component %d", palm.ErrInvalidParam, b.Name, c)
			}
			st.Color[i] = c
		}
	default:
		return st, fmt.Errorf("%w: paragraph_style %q: color needs 3 components", palm.ErrInvalidParam, b.Name)
	}
	return st, nil
}

// ParseFailureMode maps "abort" (or "") and "continue" to a palm.FailureMode.
func ParseFailureMode(s string) (palm.FailureMode, error) {
	switch strings.ToLower(s) {
	case "", "abort":
		return palm.AbortOnError, nil
	case "continue":
		return palm.ContinueOnError, nil
	default:
		return 0, fmt.Errorf("%w: on_error %q", palm.ErrInvalidParam, s)
	}
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Options returns the palm options the settings describe. A PicsDir selects
// single directory mode; palm.NewParams rejects it next to pics or
// updated_pics.
func (s *Settings) Options() []palm.Option {
	opts := []palm.Option{
		palm.WithLayer(s.Layer),
		palm.WithStyle(s.Style),
		palm.WithOnError(s.OnError),
		palm.WithBarcodes(s.Barcodes),
	}
	if s.Pics != "" || s.UpdatedPics != "" {
		opts = append(opts, palm.WithPics(s.Pics), palm.WithUpdatedPics(s.UpdatedPics))
	}
	if s.PicsDir != "" {
		opts = append(opts, palm.WithPicsDir(s.PicsDir))
	}
	return opts
}

// CanvasOptions returns the pdfcanvas options the settings describe.
func (s *Settings) CanvasOptions() []pdfcanvas.Option {
	return []pdfcanvas.Option{pdfcanvas.WithStyles(s.Styles)}
}
