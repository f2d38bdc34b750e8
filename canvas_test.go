package palm_test

import (
	"errors"
	"fmt"

	"github.com/lvillar/palm"
)

// recorder is an in-memory palm.Document that logs every canvas call.
type recorder struct {
	pages    int
	calls    []string
	missing  map[string]bool // image paths that fail to load
	styles   map[string]bool // known paragraph styles, nil accepts all
	barcodes bool
}

func newRecorder(pages int) *recorder {
	return &recorder{pages: pages, missing: map[string]bool{}}
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) PageCount() int { return r.pages }

func (r *recorder) Page(i int) (palm.Page, error) {
	r.record("page %d", i)
	if r.barcodes {
		return &barcodePage{recPage{r: r, index: i}}, nil
	}
	return &recPage{r: r, index: i}, nil
}

type recPage struct {
	r     *recorder
	index int
}

func (p *recPage) PlaceRectangle(layer string, b palm.Bounds) (palm.ImageRegion, error) {
	p.r.record("rect %q %v", layer, b)
	return &recImage{r: p.r}, nil
}

func (p *recPage) PlaceTextFrame(layer string, b palm.Bounds, text string) (palm.TextRegion, error) {
	p.r.record("text %q %v %q", layer, b, text)
	return &recText{r: p.r}, nil
}

type barcodePage struct{ recPage }

func (p *barcodePage) PlaceBarcode(layer string, b palm.Bounds, payload string, sym palm.Symbology) (palm.Placed, error) {
	p.r.record("code %q %v %q %s", layer, b, payload, sym)
	return payload, nil
}

type recImage struct{ r *recorder }

func (i *recImage) LoadImage(path string) error {
	i.r.record("load %s", path)
	if i.r.missing[path] {
		return errors.New("file not found: " + path)
	}
	return nil
}

func (i *recImage) FitProportionalFill() error {
	i.r.record("fit")
	return nil
}

type recText struct{ r *recorder }

func (t *recText) ApplyParagraphStyle(name string) error {
	t.r.record("style %s", name)
	if t.r.styles != nil && !t.r.styles[name] {
		return fmt.Errorf("%w: %q", palm.ErrUnknownStyle, name)
	}
	return nil
}

func (t *recText) SetJustification(j palm.Justification) error {
	t.r.record("justify %s", j)
	return nil
}
