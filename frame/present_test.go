package frame

import (
	"image"
	"testing"
)

type recordDisplay struct {
	w, h  int
	shown []*image.RGBA
}

func (d *recordDisplay) Size() (int, int) { return d.w, d.h }

func (d *recordDisplay) Show(img *image.RGBA) error {
	d.shown = append(d.shown, img)
	return nil
}

func renderedBuffer(t *testing.T, w, h int) *Buffer {
	t.Helper()
	b := NewBuffer(nil)
	if err := b.Resize(w, h); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	Renderer{}.Render(b, 0, 0)
	return b
}

func TestPresentZeroAreaIsNoop(t *testing.T) {
	b := renderedBuffer(t, 4, 4)
	before := append([]byte(nil), b.Bytes()...)

	d := &recordDisplay{}
	p := NewPresenter(d, FilterNearest)
	for _, sz := range [][2]int{{0, 0}, {0, 10}, {10, 0}, {-5, 3}} {
		if err := p.Present(b, sz[0], sz[1]); err != nil {
			t.Fatalf("Present(%d, %d): %v", sz[0], sz[1], err)
		}
	}
	if len(d.shown) != 0 {
		t.Fatalf("Show calls = %d, want 0", len(d.shown))
	}
	if p.src != nil || p.dst != nil {
		t.Fatal("zero-area Present allocated scratch images")
	}
	if string(before) != string(b.Bytes()) {
		t.Fatal("Present modified the source buffer")
	}
}

func TestPresentEmptyBufferIsNoop(t *testing.T) {
	d := &recordDisplay{}
	p := NewPresenter(d, FilterNearest)
	if err := p.Present(NewBuffer(nil), 10, 10); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if len(d.shown) != 0 {
		t.Fatalf("Show calls = %d, want 0", len(d.shown))
	}
}

func TestPresentSameSizeConvertsChannels(t *testing.T) {
	b := NewBuffer(nil)
	if err := b.Resize(2, 1); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	b.SetPixel(0, 0, 0x00112233)
	b.SetPixel(1, 0, 0x00AABBCC)

	d := &recordDisplay{}
	if err := NewPresenter(d, FilterNearest).Present(b, 2, 1); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if len(d.shown) != 1 {
		t.Fatalf("Show calls = %d, want 1", len(d.shown))
	}
	got := d.shown[0].Pix
	want := []byte{0x11, 0x22, 0x33, 0xFF, 0xAA, 0xBB, 0xCC, 0xFF}
	if string(got) != string(want) {
		t.Fatalf("Pix = % x, want % x", got, want)
	}
}

func TestPresentStretchNearest(t *testing.T) {
	b := renderedBuffer(t, 2, 2)
	d := &recordDisplay{}
	if err := NewPresenter(d, FilterNearest).Present(b, 4, 6); err != nil {
		t.Fatalf("Present: %v", err)
	}
	img := d.shown[0]
	if img.Rect.Dx() != 4 || img.Rect.Dy() != 6 {
		t.Fatalf("shown size = %v, want 4x6", img.Rect)
	}
	// Source (1, 1) has blue 1 and green 1.
	c := img.RGBAAt(3, 5)
	if c.R != 0 || c.G != 1 || c.B != 1 || c.A != 0xFF {
		t.Fatalf("RGBAAt(3, 5) = %+v, want {0 1 1 255}", c)
	}
	c = img.RGBAAt(0, 0)
	if c.G != 0 || c.B != 0 {
		t.Fatalf("RGBAAt(0, 0) = %+v, want black", c)
	}
}

func TestPresentShrinkBilinear(t *testing.T) {
	b := renderedBuffer(t, 64, 48)
	d := &recordDisplay{}
	if err := NewPresenter(d, FilterBilinear).Present(b, 3, 1); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if r := d.shown[0].Rect; r.Dx() != 3 || r.Dy() != 1 {
		t.Fatalf("shown size = %v, want 3x1", r)
	}
}

func TestPresentReusesScratchUntilResize(t *testing.T) {
	b := renderedBuffer(t, 4, 4)
	d := &recordDisplay{}
	p := NewPresenter(d, FilterNearest)

	for i := 0; i < 2; i++ {
		if err := p.Present(b, 8, 8); err != nil {
			t.Fatalf("Present: %v", err)
		}
	}
	if d.shown[0] != d.shown[1] {
		t.Fatal("stable target size reallocated the scratch image")
	}
	if err := p.Present(b, 9, 8); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if d.shown[2] == d.shown[1] || d.shown[2].Rect.Dx() != 9 {
		t.Fatal("target resize did not reallocate the scratch image")
	}
}

func TestParseFilter(t *testing.T) {
	if f, err := ParseFilter("bilinear"); err != nil || f != FilterBilinear {
		t.Fatalf("ParseFilter(bilinear) = %v, %v", f, err)
	}
	if f, err := ParseFilter("nearest"); err != nil || f != FilterNearest {
		t.Fatalf("ParseFilter(nearest) = %v, %v", f, err)
	}
	if _, err := ParseFilter("cubic"); err == nil {
		t.Fatal("ParseFilter(cubic) err = nil, want error")
	}
}
