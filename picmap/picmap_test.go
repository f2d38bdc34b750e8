package picmap_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvillar/palm"
	"github.com/lvillar/palm/logging"
	"github.com/lvillar/palm/picmap"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "ann.png"))
	touch(t, filepath.Join(dir, "bob.JPG"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "README"))
	touch(t, filepath.Join(dir, "a", "cat.jpeg"))
	touch(t, filepath.Join(dir, "b", "cat.png"))

	idx, err := picmap.Build(dir)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"ann": "ann.png",
		"bob": "bob.JPG",
		"cat": filepath.Join("b", "cat.png"),
	}, idx.Pics)
	assert.Equal(t, map[string][]string{
		"cat": {filepath.Join("a", "cat.jpeg"), filepath.Join("b", "cat.png")},
	}, idx.Conflicts)
}

func TestBuildFormats(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "ann.tiff"))
	touch(t, filepath.Join(dir, "bob.png"))

	idx, err := picmap.Build(dir, "tiff")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ann": "ann.tiff"}, idx.Pics)
}

func TestBuildMissingDir(t *testing.T) {
	_, err := picmap.Build(filepath.Join(t.TempDir(), "nope"))
	var pe *palm.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Build", pe.Op)
}

func TestFixExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "ann.png"))
	touch(t, filepath.Join(dir, "bob.jpg"))

	idx, err := picmap.Build(dir)
	require.NoError(t, err)

	var _ palm.ExtensionFixer = idx
	assert.Equal(t, filepath.Join(dir, "ann.png"), idx.FixExtension(filepath.Join(dir, "ann.jpg")))
	assert.Equal(t, filepath.Join(dir, "bob.jpg"), idx.FixExtension(filepath.Join(dir, "bob.jpg")))
	assert.Equal(t, "/elsewhere/zed.jpg", idx.FixExtension("/elsewhere/zed.jpg"))
}

func TestFixRows(t *testing.T) {
	idx := &picmap.Index{Pics: map[string]string{"ann": "ann.png", "bob": "bob.jpeg"}}
	rows := [][]string{
		{"name", "folder", "picture"},
		{"Ann", "pics", "ann.jpg"},
		{"Zed", "pics", "zed.jpg"},
		{"Bob", "pics", "bob.jpg"},
		{"short"},
	}

	fixed, missing := picmap.FixRows(rows, idx)

	assert.Equal(t, [][]string{
		{"name", "folder", "picture"},
		{"Ann", "pics", "ann.png"},
		{"Bob", "pics", "bob.jpeg"},
	}, fixed)
	assert.Equal(t, []int{2, 4}, missing)
	assert.Equal(t, "ann.jpg", rows[1][2], "input rows must not be modified")
}

func TestFixTable(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "pics", "ann.png"))
	touch(t, filepath.Join(dir, "pics", "bob.jpg"))

	in := filepath.Join(dir, "roster.tsv")
	out := filepath.Join(dir, "fixed.tsv")
	require.NoError(t, os.WriteFile(in, []byte(
		"name\tfolder\tpicture\n"+
			"\"Ann Lee\"\tpics\tann.jpg\n"+
			"Bob\tpics\tbob.jpg\n"+
			"Zed\tpics\tzed.png\n"), 0o600))

	report, err := picmap.FixTable(in, out)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Rows)
	assert.Equal(t, 2, report.Pics)
	assert.Equal(t, 0, report.Conflicts)
	assert.Equal(t, []int{3}, report.Missing)

	rows, err := picmap.ReadTable(out)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"name", "folder", "picture"},
		{"Ann Lee", "pics", "ann.png"},
		{"Bob", "pics", "bob.jpg"},
	}, rows)
}

func TestFixTableWithoutFolder(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "roster.tsv")
	require.NoError(t, os.WriteFile(in, []byte("name\n"), 0o600))

	_, err := picmap.FixTable(in, filepath.Join(dir, "out.tsv"))
	assert.ErrorIs(t, err, palm.ErrInvalidParam)
}

func TestFixer(t *testing.T) {
	logs := logging.NewBufferedLogHandler(nil)
	logging.SetLogger(slog.New(logs))
	t.Cleanup(func() { logging.SetLogger(nil) })

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a", "ann.png"))
	touch(t, filepath.Join(dir, "b", "ann.jpeg"))

	f := picmap.NewFixer()
	assert.Equal(t, filepath.Join(dir, "a", "ann.png"), f.FixExtension(filepath.Join(dir, "a", "ann.jpg")))
	assert.Equal(t, filepath.Join(dir, "b", "ann.jpeg"), f.FixExtension(filepath.Join(dir, "b", "ann.jpg")))
	assert.Equal(t, filepath.Join(dir, "c", "ann.jpg"), f.FixExtension(filepath.Join(dir, "c", "ann.jpg")))

	params, err := palm.NewParams(palm.WithPicsDir(filepath.Join(dir, "a")), palm.WithFixer(f))
	require.NoError(t, err)
	got, err := params.ResolvePicture(palm.Picture{Name: "ann.gif"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a", "ann.png"), got)

	assert.True(t, logs.Contains(`"message":"picture extension fixed"`), logs.String())
	assert.True(t, logs.Contains("to="+filepath.Join(dir, "b", "ann.jpeg")), logs.String())
}
