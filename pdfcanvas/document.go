// Package pdfcanvas implements palm.Document on top of an existing PDF file.
//
// Every page of the source file is imported as a template into a new PDF
// (the same way pages are carried over when watermarking), and objects
// created through the palm canvas interfaces are drawn over the imported
// pages when the document is written:
//
//	doc, err := pdfcanvas.Open("yearbook.pdf", pdfcanvas.WithStyle("caption", pdfcanvas.Style{Size: 9}))
//	if err != nil { ... }
//	if err := palm.CreateLayout(doc, layout, params); err != nil { ... }
//	err = doc.OutputFile("yearbook-laid-out.pdf")
package pdfcanvas

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
	"github.com/ledongthuc/pdf"

	"github.com/lvillar/palm"
	"github.com/lvillar/palm/logging"
)

// ErrClosed is returned when a Document is used after it has been written.
var ErrClosed = errors.New("pdfcanvas: document already written")

// A4 in points, used when a source page reports no media box.
const (
	defaultPageW = 595.28
	defaultPageH = 841.89
)

// Document is an existing PDF opened for placement. It is not safe for
// concurrent use.
type Document struct {
	src     string
	pdf     *fpdf.Fpdf
	sizes   []pageSize
	cfg     *config
	layers  map[string]int
	objects []drawable
	images  int
	closed  bool
}

type pageSize struct {
	w, h float64
}

// drawable is an object waiting to be drawn on output.
type drawable interface {
	pageNo() int
	draw(d *Document)
}

// Open imports every page of the PDF at path.
func Open(path string, opts ...Option) (*Document, error) {
	n, err := countPages(path)
	if err != nil {
		return nil, palm.NewError("Open", err)
	}
	if n == 0 {
		return nil, palm.NewError("Open", fmt.Errorf("%s has no pages", path))
	}

	cfg := newConfig(opts)
	p := fpdf.New("P", "pt", "A4", "")
	p.SetAutoPageBreak(false, 0)
	p.SetCellMargin(0)
	p.SetCompression(cfg.compression)
	imp := gofpdi.NewImporter()

	d := &Document{
		src:    path,
		pdf:    p,
		cfg:    cfg,
		layers: make(map[string]int),
	}
	if d.sizes, err = importPages(p, imp, path, n); err != nil {
		return nil, palm.NewError("Open", err)
	}

	logging.Logger().Debug("document opened", "path", path, "pages", n)
	return d, nil
}

// countPages returns the number of pages in the PDF at path.
func countPages(path string) (int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()
	return r.NumPage(), nil
}

// importPages adds one page per source page, each showing the imported
// original. gofpdi panics on sources it cannot parse; that becomes an error.
func importPages(p *fpdf.Fpdf, imp *gofpdi.Importer, path string, n int) (sizes []pageSize, err error) {
	defer func() {
		if r := recover(); r != nil {
			sizes, err = nil, fmt.Errorf("importing %s: %v", path, r)
		}
	}()

	sizes = make([]pageSize, 0, n)
	for i := 1; i <= n; i++ {
		tplID, w, h := importPage(p, imp, path, i)
		if w == 0 || h == 0 {
			w, h = defaultPageW, defaultPageH
		}
		p.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
		imp.UseImportedTemplate(p, tplID, 0, 0, w, h)
		sizes = append(sizes, pageSize{w, h})
	}
	if p.Err() {
		return nil, fmt.Errorf("importing %s: %w", path, p.Error())
	}
	return sizes, nil
}

// importPage imports a single page from a source file into the target PDF.
// Returns the template ID and page dimensions.
func importPage(p *fpdf.Fpdf, imp *gofpdi.Importer, sourceFile string, pageNum int) (tplID int, w, h float64) {
	tplID = imp.ImportPage(p, sourceFile, pageNum, "/MediaBox")
	sizes := imp.GetPageSizes()
	if dims, ok := sizes[pageNum]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			w = mb["w"]
			h = mb["h"]
		}
	}
	return
}

// PageCount implements palm.Document.
func (d *Document) PageCount() int {
	return len(d.sizes)
}

// Page implements palm.Document. The returned page also implements
// palm.BarcodePage.
func (d *Document) Page(i int) (palm.Page, error) {
	if d.closed {
		return nil, ErrClosed
	}
	if i < 0 || i >= len(d.sizes) {
		return nil, fmt.Errorf("%w: page %d of %d", palm.ErrPageOutOfRange, i+1, len(d.sizes))
	}
	return &Page{doc: d, no: i + 1}, nil
}

// PageSize returns the width and height in points of the zero-based page i.
func (d *Document) PageSize(i int) (w, h float64, ok bool) {
	if i < 0 || i >= len(d.sizes) {
		return 0, 0, false
	}
	return d.sizes[i].w, d.sizes[i].h, true
}

// Output draws every placed object in creation order and writes the PDF to
// w. A Document can be written once.
func (d *Document) Output(w io.Writer) error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true

	for _, obj := range d.objects {
		d.pdf.SetPage(obj.pageNo())
		obj.draw(d)
	}
	d.pdf.SetPage(len(d.sizes))

	if d.pdf.Err() {
		return palm.NewError("Output", d.pdf.Error())
	}
	if err := d.pdf.Output(w); err != nil {
		return palm.NewError("Output", err)
	}
	logging.Logger().Debug("document written", "source", d.src, "objects", len(d.objects))
	return nil
}

// OutputFile writes the PDF to the named file.
func (d *Document) OutputFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return palm.NewError("Output", fmt.Errorf("creating %s: %w", path, err))
	}
	defer f.Close()
	if err := d.Output(f); err != nil {
		return err
	}
	return f.Close()
}

// layerID returns the optional content group for name, creating it on first
// use. The empty name means no layer.
func (d *Document) layerID(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	id, ok := d.layers[name]
	if !ok {
		id = d.pdf.AddLayer(name, !d.cfg.layerHidden[name])
		d.layers[name] = id
	}
	return id, true
}

// takeError returns and clears the pending fpdf error so one bad element
// does not poison the rest of the document.
func (d *Document) takeError() error {
	if !d.pdf.Err() {
		return nil
	}
	err := d.pdf.Error()
	d.pdf.ClearError()
	return err
}

func (d *Document) add(obj drawable) {
	d.objects = append(d.objects, obj)
}
