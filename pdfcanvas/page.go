package pdfcanvas

import (
	"fmt"

	"github.com/lvillar/palm"
)

// Page is one page of a Document.
type Page struct {
	doc *Document
	no  int // one-based
}

// Number returns the one-based page number.
func (p *Page) Number() int { return p.no }

// PlaceRectangle implements palm.Page. The rectangle has no stroke and stays
// empty until an image is loaded into it.
func (p *Page) PlaceRectangle(layer string, b palm.Bounds) (palm.ImageRegion, error) {
	if err := p.check(b); err != nil {
		return nil, err
	}
	r := &ImageRegion{frame: p.frame(layer, b)}
	p.doc.add(r)
	return r, nil
}

// PlaceTextFrame implements palm.Page.
func (p *Page) PlaceTextFrame(layer string, b palm.Bounds, text string) (palm.TextRegion, error) {
	if err := p.check(b); err != nil {
		return nil, err
	}
	r := &TextRegion{frame: p.frame(layer, b), text: text}
	p.doc.add(r)
	return r, nil
}

func (p *Page) check(b palm.Bounds) error {
	if p.doc.closed {
		return ErrClosed
	}
	if b.Width() < 0 || b.Height() < 0 {
		return fmt.Errorf("%w: bounds %v", palm.ErrInvalidGeometry, b)
	}
	return nil
}

func (p *Page) frame(layer string, b palm.Bounds) frame {
	id, ok := p.doc.layerID(layer)
	return frame{doc: p.doc, page: p.no, layer: id, hasLayer: ok, bounds: b}
}

// frame is what every placed object shares: where it goes.
type frame struct {
	doc      *Document
	page     int
	layer    int
	hasLayer bool
	bounds   palm.Bounds
}

func (f frame) pageNo() int { return f.page }

// Bounds returns the frame rectangle.
func (f frame) Bounds() palm.Bounds { return f.bounds }

// within runs fn with the frame's layer active and drawing clipped to the
// frame.
func (f frame) within(fn func(x, y, w, h float64)) {
	b := f.bounds
	x, y, w, h := b.Left, b.Top, b.Width(), b.Height()
	if w == 0 || h == 0 {
		return
	}
	p := f.doc.pdf
	if f.hasLayer {
		p.BeginLayer(f.layer)
		defer p.EndLayer()
	}
	p.ClipRect(x, y, w, h, false)
	defer p.ClipEnd()
	fn(x, y, w, h)
}

var _ palm.BarcodePage = (*Page)(nil)
