package palm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvillar/palm"
)

func TestElementDecode(t *testing.T) {
	geom := palm.Geometry{Pos: [2]float64{1, 2}, Size: [2]float64{3, 4}}
	tests := []struct {
		name     string
		desc     palm.ElementDescriptor
		barcodes bool
		want     palm.Element
	}{
		{
			name: "picture",
			desc: palm.ElementDescriptor{Type: "pic", Pos: []float64{1, 2}, Size: []float64{3, 4}, Pic: "a.jpg", Fileset: "updates"},
			want: palm.Picture{Geometry: geom, Name: "a.jpg", Fileset: "updates"},
		},
		{
			name: "text right",
			desc: palm.ElementDescriptor{Type: "text", Pos: []float64{1, 2}, Size: []float64{3, 4}, Txt: "Hi", Align: "right"},
			want: palm.Text{Geometry: geom, Content: "Hi", Align: palm.JustifyRight},
		},
		{
			name: "text unknown align",
			desc: palm.ElementDescriptor{Type: "text", Pos: []float64{1, 2}, Size: []float64{3, 4}, Align: "center"},
			want: palm.Text{Geometry: geom},
		},
		{
			name:     "code default symbology",
			desc:     palm.ElementDescriptor{Type: "code", Pos: []float64{1, 2}, Size: []float64{3, 4}, Code: "X1"},
			barcodes: true,
			want:     palm.Code{Geometry: geom, Payload: "X1", Symbology: palm.SymbologyQR},
		},
		{
			name: "code disabled",
			desc: palm.ElementDescriptor{Type: "code", Pos: []float64{1, 2}, Size: []float64{3, 4}},
			want: nil,
		},
		{
			name: "unknown type ignores geometry",
			desc: palm.ElementDescriptor{Type: "shape"},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.desc.Element(tt.barcodes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestElementDecodeInvalid(t *testing.T) {
	for _, d := range []palm.ElementDescriptor{
		{Type: "pic", Pos: []float64{1}, Size: []float64{3, 4}},
		{Type: "pic", Size: []float64{3, 4}},
		{Type: "text", Pos: []float64{1, 2}, Size: []float64{3, 4, 5}},
		{Type: "text", Pos: []float64{1, 2}, Size: []float64{-1, 4}},
	} {
		_, err := d.Element(false)
		assert.ErrorIs(t, err, palm.ErrInvalidGeometry, "%+v", d)
	}

	_, err := palm.ElementDescriptor{Type: "code", Pos: []float64{0, 0}, Size: []float64{1, 1}, Symbology: "aztec"}.Element(true)
	assert.ErrorIs(t, err, palm.ErrUnsupported)
}
