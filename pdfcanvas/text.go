package pdfcanvas

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/lvillar/palm"
)

// Style is a named paragraph style. Zero fields take the document default.
type Style struct {
	Font       string  // core font family: Helvetica, Times, Courier
	Face       string  // "", "B", "I" or "BI"
	Size       float64 // points
	LineHeight float64 // points, default 1.2 x Size
	Color      [3]int  // RGB
	Align      string  // L, C, R or J
}

// merge returns s with its zero fields taken from base.
func (s Style) merge(base Style) Style {
	if s.Font == "" {
		s.Font = base.Font
	}
	if s.Face == "" {
		s.Face = base.Face
	}
	if s.Size == 0 {
		s.Size = base.Size
	}
	if s.LineHeight == 0 {
		s.LineHeight = base.LineHeight
	}
	if s.Color == ([3]int{}) {
		s.Color = base.Color
	}
	if s.Align == "" {
		s.Align = base.Align
	}
	return s
}

var builtinStyle = Style{Font: "Helvetica", Size: 12, Align: "L"}

// TextRegion is a text frame on a page.
type TextRegion struct {
	frame
	text  string
	style string // "" for the document default
	align string // "" keeps the style's alignment
}

// ApplyParagraphStyle implements palm.TextRegion.
func (r *TextRegion) ApplyParagraphStyle(name string) error {
	if _, ok := r.doc.cfg.styles[name]; !ok {
		return fmt.Errorf("%w: %q", palm.ErrUnknownStyle, name)
	}
	r.style = name
	return nil
}

// SetJustification implements palm.TextRegion.
func (r *TextRegion) SetJustification(j palm.Justification) error {
	switch j {
	case palm.JustifyLeft:
		r.align = "L"
	case palm.JustifyRight:
		r.align = "R"
	default:
		r.align = ""
	}
	return nil
}

// Text returns the frame's contents.
func (r *TextRegion) Text() string { return r.text }

// resolvedStyle returns the effective style of the frame.
func (r *TextRegion) resolvedStyle() Style {
	base := r.doc.cfg.base.merge(builtinStyle)
	s := base
	if r.style != "" {
		s = r.doc.cfg.styles[r.style].merge(base)
	}
	if r.align != "" {
		s.Align = r.align
	}
	if s.LineHeight == 0 {
		s.LineHeight = s.Size * 1.2
	}
	return s
}

func (r *TextRegion) draw(d *Document) {
	s := r.resolvedStyle()
	r.within(func(x, y, w, h float64) {
		d.pdf.SetFont(s.Font, s.Face, s.Size)
		d.pdf.SetTextColor(s.Color[0], s.Color[1], s.Color[2])
		d.pdf.SetXY(x, y)
		d.pdf.MultiCell(w, s.LineHeight, toWinAnsi(r.text), "", s.Align, false)
		d.pdf.SetTextColor(0, 0, 0)
	})
}

var winAnsi = encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())

// toWinAnsi converts s to the single-byte encoding of the PDF core fonts.
// Characters outside Windows-1252 become the encoder's replacement byte.
func toWinAnsi(s string) string {
	out, err := winAnsi.String(s)
	if err != nil {
		return s
	}
	return out
}
