package frame

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Overlay draws debug text on top of a rendered buffer.
type Overlay struct {
	font  tinyfont.Fonter
	color color.RGBA

	// Margin is the gap in pixels between the buffer edge and the text.
	Margin int16
}

func NewOverlay() *Overlay {
	return &Overlay{
		font:   &proggy.TinySZ8pt7b,
		color:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Margin: 4,
	}
}

// Draw writes lines top to bottom from the top-left corner and returns how
// many were drawn. Text past the buffer edges is clipped; lines starting below
// the buffer, or below the int16 coordinate range of the font renderer, are
// skipped.
func (o *Overlay) Draw(b *Buffer, lines []string) int {
	if b == nil || b.Empty() || len(lines) == 0 {
		return 0
	}
	d := bufferDisplayer{b: b}
	advance := int(o.font.GetYAdvance())
	bottom := min(b.Height(), math.MaxInt16-advance)
	y := int(o.Margin) + advance
	for i, line := range lines {
		if y-advance >= bottom {
			return i
		}
		tinyfont.WriteLine(d, o.font, o.Margin, int16(y), line, o.color)
		y += advance
	}
	return len(lines)
}

// bufferDisplayer lets tinyfont draw straight into a Buffer.
type bufferDisplayer struct {
	b *Buffer
}

var _ drivers.Displayer = bufferDisplayer{}

func (d bufferDisplayer) Size() (x, y int16) {
	return clampInt16(d.b.Width()), clampInt16(d.b.Height())
}

func (d bufferDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.b.SetPixel(int(x), int(y), uint32(c.R)<<16|uint32(c.G)<<8|uint32(c.B))
}

func (d bufferDisplayer) Display() error { return nil }

func clampInt16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(v)
}
