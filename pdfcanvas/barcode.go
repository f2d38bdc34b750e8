package pdfcanvas

import (
	"fmt"

	"github.com/boombuler/barcode/qr"
	"github.com/go-pdf/fpdf/contrib/barcode"

	"github.com/lvillar/palm"
)

// PDF417 layout used for every pdf417 element.
const (
	pdf417Columns       = 10
	pdf417SecurityLevel = 2
)

// CodeRegion is a barcode drawn to fill its frame.
type CodeRegion struct {
	frame
	key string
}

// PlaceBarcode implements palm.BarcodePage.
func (p *Page) PlaceBarcode(layer string, b palm.Bounds, payload string, sym palm.Symbology) (palm.Placed, error) {
	if err := p.check(b); err != nil {
		return nil, err
	}
	if payload == "" {
		return nil, palm.NewError("PlaceBarcode", fmt.Errorf("%w: empty payload", palm.ErrInvalidParam))
	}

	pdf := p.doc.pdf
	var key string
	switch sym {
	case palm.SymbologyQR:
		key = barcode.RegisterQR(pdf, payload, qr.M, qr.Auto)
	case palm.SymbologyCode128:
		key = barcode.RegisterCode128(pdf, payload)
	case palm.SymbologyPDF417:
		key = barcode.RegisterPdf417(pdf, payload, pdf417Columns, pdf417SecurityLevel)
	default:
		return nil, palm.NewError("PlaceBarcode", fmt.Errorf("%w: symbology %q", palm.ErrUnsupported, sym))
	}
	if err := p.doc.takeError(); err != nil {
		return nil, palm.NewError("PlaceBarcode", err)
	}

	r := &CodeRegion{frame: p.frame(layer, b), key: key}
	p.doc.add(r)
	return r, nil
}

func (r *CodeRegion) draw(d *Document) {
	r.within(func(x, y, w, h float64) {
		barcode.Barcode(d.pdf, r.key, x, y, w, h, false)
	})
}
