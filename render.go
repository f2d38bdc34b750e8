package palm

import (
	"errors"
	"fmt"

	"github.com/lvillar/palm/logging"
)

// CreateLayout places every element of d on doc, page by page and element by
// element, in descriptor order. Document pages beyond the descriptor are not
// touched. A descriptor page without a document page stops the pass with a
// *StructuralError; objects already placed stay where they are.
//
// With AbortOnError the first failing element ends the pass and its
// *PlacementError is returned. With ContinueOnError failing elements are
// skipped and reported together as a *FailureSummary.
func CreateLayout(doc Document, d *Descriptor, p Params) error {
	log := logging.Logger()
	var failures []*PlacementError

	finish := func(err error) error {
		if len(failures) == 0 {
			return err
		}
		summary := &FailureSummary{Failures: failures}
		if err == nil {
			return summary
		}
		return errors.Join(err, summary)
	}

	pageCount := doc.PageCount()
	for i, pd := range d.Pages {
		if i >= pageCount {
			return finish(&StructuralError{Page: i, PageCount: pageCount})
		}
		page, err := doc.Page(i)
		if err != nil {
			return finish(NewError("Page", fmt.Errorf("page %d: %w", i+1, err)))
		}

		for j, ed := range pd.Elems {
			err := placeDescriptor(page, ed, p)
			if err == nil {
				continue
			}
			pe := &PlacementError{Page: i, Elem: j, Kind: ed.Type, Err: err}
			if p.OnError == AbortOnError {
				return pe
			}
			log.Warn("element skipped", "page", i+1, "elem", j+1, "type", ed.Type, "err", err)
			failures = append(failures, pe)
		}
		log.Debug("page laid out", "page", i+1, "elems", len(pd.Elems))
	}
	return finish(nil)
}

func placeDescriptor(page Page, ed ElementDescriptor, p Params) error {
	e, err := ed.Element(p.Barcodes)
	if err != nil {
		return err
	}
	_, err = CreateElem(page, e, p)
	return err
}

// CreateElem creates e on page. A nil element, which is what unknown
// descriptor types decode to, creates nothing and returns (nil, nil).
func CreateElem(page Page, e Element, p Params) (Placed, error) {
	switch e := e.(type) {
	case nil:
		return nil, nil
	case Picture:
		return createPic(page, e, p)
	case Text:
		return createText(page, e, p)
	case Code:
		return createCode(page, e, p)
	default:
		panic(fmt.Sprintf("palm: unhandled element %T", e))
	}
}

func createPic(page Page, pic Picture, p Params) (ImageRegion, error) {
	src, err := p.ResolvePicture(pic)
	if err != nil {
		return nil, err
	}
	b := pic.Bounds()
	region, err := page.PlaceRectangle(p.Layer, b)
	if err != nil {
		return nil, err
	}
	if err := region.LoadImage(src); err != nil {
		return nil, err
	}
	if err := region.FitProportionalFill(); err != nil {
		return nil, err
	}
	logging.Logger().Debug("picture placed", "src", src, "bounds", b.String())
	return region, nil
}

func createText(page Page, t Text, p Params) (TextRegion, error) {
	region, err := page.PlaceTextFrame(p.Layer, t.Bounds(), t.Content)
	if err != nil {
		return nil, err
	}
	if p.Style != "" {
		if err := region.ApplyParagraphStyle(p.Style); err != nil {
			return nil, err
		}
	}
	if t.Align != JustifyDefault {
		if err := region.SetJustification(t.Align); err != nil {
			return nil, err
		}
	}
	return region, nil
}

func createCode(page Page, c Code, p Params) (Placed, error) {
	bp, ok := page.(BarcodePage)
	if !ok {
		return nil, fmt.Errorf("%w: page cannot draw barcodes", ErrUnsupported)
	}
	return bp.PlaceBarcode(p.Layer, c.Bounds(), c.Payload, c.Symbology)
}
