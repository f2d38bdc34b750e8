package palm

import "fmt"

// Element is a decoded descriptor element: Picture, Text or Code.
type Element interface {
	// Bounds returns the canvas rectangle the element occupies.
	Bounds() Bounds
	isElement()
}

// Geometry is the [vertical, horizontal] position and size of an element.
type Geometry struct {
	Pos  [2]float64
	Size [2]float64
}

// Bounds returns the canvas rectangle of g.
func (g Geometry) Bounds() Bounds {
	return BoundsOf(g.Pos, g.Size)
}

// Picture places an image file.
type Picture struct {
	Geometry
	Name    string // relative file name as written in the descriptor
	Fileset string
}

// Justification is a paragraph alignment a text element may request.
type Justification int

const (
	// JustifyDefault leaves the document's justification untouched.
	JustifyDefault Justification = iota
	JustifyLeft
	JustifyRight
)

func (j Justification) String() string {
	switch j {
	case JustifyLeft:
		return "left"
	case JustifyRight:
		return "right"
	default:
		return "default"
	}
}

// Text places a literal string.
type Text struct {
	Geometry
	Content string
	Align   Justification
}

// Symbology names a barcode encoding.
type Symbology string

const (
	SymbologyQR      Symbology = "qr"
	SymbologyCode128 Symbology = "code128"
	SymbologyPDF417  Symbology = "pdf417"
)

// Code places a barcode.
type Code struct {
	Geometry
	Payload   string
	Symbology Symbology
}

func (Picture) isElement() {}
func (Text) isElement()    {}
func (Code) isElement()    {}

// Element decodes d. It returns nil without error for types the engine does
// not place, so descriptors may carry element kinds from newer tools.
// barcodes enables the "code" type.
func (d ElementDescriptor) Element(barcodes bool) (Element, error) {
	switch d.Type {
	case TypePic, TypeText:
	case TypeCode:
		if !barcodes {
			return nil, nil
		}
	default:
		return nil, nil
	}

	g, err := d.geometry()
	if err != nil {
		return nil, err
	}

	switch d.Type {
	case TypePic:
		return Picture{Geometry: g, Name: d.Pic, Fileset: d.Fileset}, nil
	case TypeText:
		t := Text{Geometry: g, Content: d.Txt}
		switch d.Align {
		case "left":
			t.Align = JustifyLeft
		case "right":
			t.Align = JustifyRight
		}
		return t, nil
	default:
		sym := Symbology(d.Symbology)
		switch sym {
		case "":
			sym = SymbologyQR
		case SymbologyQR, SymbologyCode128, SymbologyPDF417:
		default:
			return nil, fmt.Errorf("%w: symbology %q", ErrUnsupported, d.Symbology)
		}
		return Code{Geometry: g, Payload: d.Code, Symbology: sym}, nil
	}
}

func (d ElementDescriptor) geometry() (Geometry, error) {
	if len(d.Pos) != 2 || len(d.Size) != 2 {
		return Geometry{}, fmt.Errorf("%w: got pos %v, size %v", ErrInvalidGeometry, d.Pos, d.Size)
	}
	if d.Size[0] < 0 || d.Size[1] < 0 {
		return Geometry{}, fmt.Errorf("%w: got size %v", ErrInvalidGeometry, d.Size)
	}
	return Geometry{
		Pos:  [2]float64{d.Pos[0], d.Pos[1]},
		Size: [2]float64{d.Size[0], d.Size[1]},
	}, nil
}
