package palm

// Document is the target of a layout pass. The engine never creates
// documents or layers; both come from the caller.
type Document interface {
	// PageCount returns the number of pages available for placement.
	PageCount() int
	// Page returns the zero-based page i.
	Page(i int) (Page, error)
}

// Page creates objects on one document page. Objects created later stack
// above objects created earlier.
type Page interface {
	PlaceRectangle(layer string, b Bounds) (ImageRegion, error)
	PlaceTextFrame(layer string, b Bounds, text string) (TextRegion, error)
}

// BarcodePage is implemented by pages that can draw barcodes.
type BarcodePage interface {
	PlaceBarcode(layer string, b Bounds, payload string, sym Symbology) (Placed, error)
}

// ImageRegion is a rectangle that holds an image.
type ImageRegion interface {
	LoadImage(path string) error
	// FitProportionalFill scales the image to cover the region, keeping its
	// aspect ratio and cropping the overflow.
	FitProportionalFill() error
}

// TextRegion is a frame holding literal text.
type TextRegion interface {
	ApplyParagraphStyle(name string) error
	SetJustification(j Justification) error
}

// Placed is an object created on a page: an ImageRegion, a TextRegion or
// whatever a BarcodePage returns.
type Placed any
