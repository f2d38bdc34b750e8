package palm

import "fmt"

// Bounds is a canvas rectangle in document units.
type Bounds struct {
	Top, Left, Bottom, Right float64
}

// BoundsOf converts a descriptor position and size into canvas bounds.
//
// Descriptors write pairs as [vertical, horizontal] while the canvas wants
// (top, left, bottom, right). The mapping is
//
//	top    = pos[1]
//	left   = pos[0]
//	bottom = pos[1] + size[1]
//	right  = pos[0] + size[0]
//
// and must stay exactly this way: existing layout files are written for it.
func BoundsOf(pos, size [2]float64) Bounds {
	return Bounds{
		Top:    pos[1],
		Left:   pos[0],
		Bottom: pos[1] + size[1],
		Right:  pos[0] + size[0],
	}
}

// Width returns Right - Left.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns Bottom - Top.
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

func (b Bounds) String() string {
	return fmt.Sprintf("[%g %g %g %g]", b.Top, b.Left, b.Bottom, b.Right)
}
