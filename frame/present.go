package frame

import (
	"fmt"
	"image"

	"engine/hal"

	"golang.org/x/image/draw"
)

// Filter selects the stretch kernel used by a Presenter.
type Filter uint8

const (
	FilterNearest Filter = iota
	FilterBilinear
)

func (f Filter) String() string {
	switch f {
	case FilterBilinear:
		return "bilinear"
	default:
		return "nearest"
	}
}

// ParseFilter accepts "nearest" or "bilinear".
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "nearest", "":
		return FilterNearest, nil
	case "bilinear":
		return FilterBilinear, nil
	}
	return 0, fmt.Errorf("frame: unknown filter %q", s)
}

func (f Filter) scaler() draw.Scaler {
	if f == FilterBilinear {
		return draw.ApproxBiLinear
	}
	return draw.NearestNeighbor
}

// Presenter stretches a Buffer to the display's current size and shows it.
// The filter is fixed for the presenter's lifetime.
type Presenter struct {
	display hal.Display
	filter  Filter
	scaler  draw.Scaler

	src *image.RGBA
	dst *image.RGBA
}

func NewPresenter(d hal.Display, f Filter) *Presenter {
	return &Presenter{display: d, filter: f, scaler: f.scaler()}
}

func (p *Presenter) Filter() Filter { return p.filter }

// Present copies b onto a targetWidth x targetHeight image and passes it to
// the display. A zero-area target or an empty buffer does nothing.
func (p *Presenter) Present(b *Buffer, targetWidth, targetHeight int) error {
	if targetWidth <= 0 || targetHeight <= 0 || b == nil || b.Empty() || p.display == nil {
		return nil
	}

	p.src = ensureRGBA(p.src, b.Width(), b.Height())
	convertXRGB(p.src, b)

	if targetWidth == b.Width() && targetHeight == b.Height() {
		return p.display.Show(p.src)
	}

	p.dst = ensureRGBA(p.dst, targetWidth, targetHeight)
	p.scaler.Scale(p.dst, p.dst.Bounds(), p.src, p.src.Bounds(), draw.Src, nil)
	return p.display.Show(p.dst)
}

func ensureRGBA(img *image.RGBA, w, h int) *image.RGBA {
	if img == nil || img.Rect.Dx() != w || img.Rect.Dy() != h {
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return img
}

// convertXRGB writes the top-down buffer b into dst as opaque RGBA.
func convertXRGB(dst *image.RGBA, b *Buffer) {
	src := b.Bytes()
	w, h := b.Width(), b.Height()
	for y := 0; y < h; y++ {
		srow := src[y*b.StrideBytes():]
		drow := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			i := x * BytesPerPixel
			drow[i+0] = srow[i+2]
			drow[i+1] = srow[i+1]
			drow[i+2] = srow[i+0]
			drow[i+3] = 0xFF
		}
	}
}
