package pdfcanvas

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/go-pdf/fpdf"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/lvillar/palm"
	"github.com/lvillar/palm/logging"
)

// ImageRegion is a rectangle holding at most one image.
type ImageRegion struct {
	frame
	name   string  // registered fpdf image name, "" until LoadImage
	iw, ih float64 // native size in points (one pixel per point)
	fill   bool
}

// LoadImage implements palm.ImageRegion. JPEG files are embedded as they
// are; PNG, GIF, BMP, TIFF and WebP are decoded and embedded as 8-bit PNG.
func (r *ImageRegion) LoadImage(path string) error {
	if r.doc.closed {
		return ErrClosed
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return palm.NewError("LoadImage", err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return palm.NewError("LoadImage", fmt.Errorf("%s: %w", path, err))
	}

	opts := fpdf.ImageOptions{ImageType: "JPG"}
	if format != "jpeg" {
		data, err = transcodePNG(data)
		if err != nil {
			return palm.NewError("LoadImage", fmt.Errorf("%s: %w", path, err))
		}
		opts.ImageType = "PNG"
	}

	r.doc.images++
	name := fmt.Sprintf("palm-%d", r.doc.images)
	r.doc.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if err := r.doc.takeError(); err != nil {
		return palm.NewError("LoadImage", fmt.Errorf("%s: %w", path, err))
	}

	r.name = name
	r.iw, r.ih = float64(cfg.Width), float64(cfg.Height)
	logging.Logger().Debug("image loaded", "path", path, "format", format, "width", cfg.Width, "height", cfg.Height)
	return nil
}

// transcodePNG decodes any registered image format and re-encodes it as an
// 8-bit NRGBA PNG, which fpdf always accepts.
func transcodePNG(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FitProportionalFill implements palm.ImageRegion.
func (r *ImageRegion) FitProportionalFill() error {
	if r.name == "" {
		return palm.NewError("FitProportionalFill", fmt.Errorf("%w: no image loaded", palm.ErrUnsupported))
	}
	r.fill = true
	return nil
}

func (r *ImageRegion) draw(d *Document) {
	if r.name == "" {
		return
	}
	r.within(func(x, y, w, h float64) {
		dw, dh, ox, oy := r.iw, r.ih, 0.0, 0.0
		if r.fill {
			dw, dh, ox, oy = FillProportionally(r.iw, r.ih, w, h)
		}
		if dw == 0 || dh == 0 {
			return
		}
		d.pdf.ImageOptions(r.name, x+ox, y+oy, dw, dh, false,
			fpdf.ImageOptions{AllowNegativePosition: true}, 0, "")
	})
}

// FillProportionally scales an iw x ih image to cover a w x h frame while
// keeping its aspect ratio. It returns the drawn size and the offset of the
// image's top-left corner from the frame's, centring the overflow.
func FillProportionally(iw, ih, w, h float64) (dw, dh, ox, oy float64) {
	if iw <= 0 || ih <= 0 {
		return w, h, 0, 0
	}
	scale := w / iw
	if s := h / ih; s > scale {
		scale = s
	}
	dw, dh = iw*scale, ih*scale
	return dw, dh, (w - dw) / 2, (h - dh) / 2
}
