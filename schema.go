// Package palm places pictures and text blocks onto the pages of an existing
// document, driven by a JSON layout descriptor.
//
// The descriptor lists pages in document order, each with the elements to
// create on it:
//
//	{
//	  "pages": [{
//	    "elems": [
//	      {"type": "pic", "pos": [20, 30], "size": [200, 150], "pic": "ann.jpg", "fileset": "originals"},
//	      {"type": "text", "pos": [20, 190], "size": [200, 14], "txt": "Ann", "align": "right"}
//	    ]
//	  }]
//	}
//
// pos and size are [vertical, horizontal] pairs; see BoundsOf for how they
// map onto the canvas rectangle. The engine talks to the target document
// through the Document interface; package pdfcanvas implements it for PDF
// files.
package palm

// Descriptor is a parsed layout file.
type Descriptor struct {
	Pages []PageDescriptor `json:"pages"`
}

// PageDescriptor lists the elements of one page in creation order.
type PageDescriptor struct {
	Elems []ElementDescriptor `json:"elems"`
}

// ElementDescriptor is one raw element record. Type selects which of the
// remaining fields are relevant.
type ElementDescriptor struct {
	Type string    `json:"type"` // pic, text, code
	Pos  []float64 `json:"pos"`
	Size []float64 `json:"size"`

	// pic
	Pic     string `json:"pic,omitempty"`
	Fileset string `json:"fileset,omitempty"` // originals, updates

	// text
	Txt   string `json:"txt,omitempty"`
	Align string `json:"align,omitempty"` // left, right

	// code
	Code      string `json:"code,omitempty"`
	Symbology string `json:"symbology,omitempty"` // qr, code128, pdf417
}

// Element type names used in descriptors.
const (
	TypePic  = "pic"
	TypeText = "text"
	TypeCode = "code"
)

// Fileset names used in descriptors.
const (
	FilesetOriginals = "originals"
	FilesetUpdates   = "updates"
)
