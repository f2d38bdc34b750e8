package palm

import "fmt"

// ResolveMode selects how picture names are turned into file paths.
type ResolveMode int

const (
	// FilesetMode prefixes a picture with the directory named by its fileset.
	FilesetMode ResolveMode = iota
	// SingleDirMode prefixes every picture with PicsDir.
	SingleDirMode
)

func (m ResolveMode) String() string {
	switch m {
	case SingleDirMode:
		return "single-dir"
	default:
		return "fileset"
	}
}

// FailureMode decides what happens to the pass after a placement failure.
type FailureMode int

const (
	// AbortOnError stops the pass at the first failing element.
	AbortOnError FailureMode = iota
	// ContinueOnError skips failing elements and reports them all at the end.
	ContinueOnError
)

// ExtensionFixer maps a resolved picture path to the file that actually
// exists on disk, e.g. "a/photo.jpg" to "a/photo.png".
type ExtensionFixer interface {
	FixExtension(path string) string
}

// Params holds everything the engine needs besides the descriptor. Build it
// with NewParams; the zero value is a valid fileset-mode configuration with
// no directories and no style.
type Params struct {
	Layer       string // layer for every created object, "" for the default
	Pics        string // base directory of the "originals" fileset
	UpdatedPics string // base directory of the "updates" fileset
	PicsDir     string // single base directory; only valid with Mode SingleDirMode
	Style       string // paragraph style applied to created text, "" for none
	Mode        ResolveMode
	OnError     FailureMode
	Barcodes    bool // recognise "code" elements
	Fixer       ExtensionFixer
}

// Option is a functional option for configuring Params via NewParams.
type Option func(*Params)

// WithLayer sets the layer all objects are created on.
func WithLayer(layer string) Option {
	return func(p *Params) {
		p.Layer = layer
	}
}

// WithPics sets the directory of the "originals" fileset.
func WithPics(dir string) Option {
	return func(p *Params) {
		p.Pics = dir
	}
}

// WithUpdatedPics sets the directory of the "updates" fileset.
func WithUpdatedPics(dir string) Option {
	return func(p *Params) {
		p.UpdatedPics = dir
	}
}

// WithPicsDir switches to SingleDirMode and prefixes every picture with dir.
func WithPicsDir(dir string) Option {
	return func(p *Params) {
		p.PicsDir = dir
		p.Mode = SingleDirMode
	}
}

// WithStyle sets the paragraph style applied to every text element.
func WithStyle(name string) Option {
	return func(p *Params) {
		p.Style = name
	}
}

// WithOnError sets the failure mode of the pass.
func WithOnError(mode FailureMode) Option {
	return func(p *Params) {
		p.OnError = mode
	}
}

// WithBarcodes enables "code" elements.
func WithBarcodes(enabled bool) Option {
	return func(p *Params) {
		p.Barcodes = enabled
	}
}

// WithFixer sets the extension fixer applied to resolved picture paths.
func WithFixer(f ExtensionFixer) Option {
	return func(p *Params) {
		p.Fixer = f
	}
}

// NewParams builds Params from functional options.
// PicsDir cannot be combined with Pics or UpdatedPics.
//
// Example:
//
//	params, err := palm.NewParams(
//	    palm.WithLayer("Photos"),
//	    palm.WithPics("/shoot/originals"),
//	    palm.WithUpdatedPics("/shoot/retouched"),
//	    palm.WithStyle("caption"),
//	)
func NewParams(opts ...Option) (Params, error) {
	var p Params
	for _, opt := range opts {
		opt(&p)
	}
	if p.Mode == SingleDirMode && (p.Pics != "" || p.UpdatedPics != "") {
		return Params{}, fmt.Errorf("%w: pics dir excludes originals and updates directories", ErrInvalidParam)
	}
	return p, nil
}
