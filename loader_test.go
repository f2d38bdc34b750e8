package palm_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvillar/palm"
)

func TestParse(t *testing.T) {
	d, err := palm.Parse([]byte(`{"pages":[
		{"elems":[
			{"type":"pic","pos":[1,2],"size":[3,4],"pic":"a.jpg","fileset":"originals"},
			{"type":"text","pos":[0,0],"size":[10,20],"txt":"Hi","align":"right"}
		]},
		{}
	]}`))
	require.NoError(t, err)
	require.Len(t, d.Pages, 2)
	require.Len(t, d.Pages[0].Elems, 2)
	assert.Empty(t, d.Pages[1].Elems)

	pic := d.Pages[0].Elems[0]
	assert.Equal(t, "pic", pic.Type)
	assert.Equal(t, []float64{1, 2}, pic.Pos)
	assert.Equal(t, []float64{3, 4}, pic.Size)
	assert.Equal(t, "a.jpg", pic.Pic)
	assert.Equal(t, "originals", pic.Fileset)

	txt := d.Pages[0].Elems[1]
	assert.Equal(t, "Hi", txt.Txt)
	assert.Equal(t, "right", txt.Align)
}

func TestParseTolerance(t *testing.T) {
	for _, src := range []string{`{}`, `{"pages":null}`, `{"pages":[]}`, `{"version":2}`} {
		d, err := palm.Parse([]byte(src))
		require.NoError(t, err, src)
		assert.Empty(t, d.Pages, src)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, src := range []string{
		``,
		`{"pages":[`,
		`Function("return 1")()`,
		`{"pages":{"elems":[]}}`,
		`[1,2]`,
	} {
		_, err := palm.Parse([]byte(src))
		var pe *palm.ParseError
		require.ErrorAs(t, err, &pe, "input %q", src)
		assert.NotNil(t, pe.Err)
	}
}

func TestLoad(t *testing.T) {
	d, err := palm.Load(strings.NewReader(`{"pages":[{"elems":[{"type":"text"}]}]}`))
	require.NoError(t, err)
	require.Len(t, d.Pages, 1)
	assert.Equal(t, "text", d.Pages[0].Elems[0].Type)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestLoadReadError(t *testing.T) {
	_, err := palm.Load(failingReader{})
	var pe *palm.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "layout.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"pages":[{"elems":[]}]}`), 0o600))
	d, err := palm.LoadFile(good)
	require.NoError(t, err)
	assert.Len(t, d.Pages, 1)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"pages":[}`), 0o600))
	_, err = palm.LoadFile(bad)
	var pe *palm.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, bad, pe.Path)
	assert.Contains(t, err.Error(), bad)

	_, err = palm.LoadFile(filepath.Join(dir, "missing.json"))
	require.ErrorAs(t, err, &pe)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
