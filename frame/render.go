package frame

import "encoding/binary"

// Renderer fills a buffer with the diagnostic gradient: blue follows x, green
// follows y, both wrapping every 256 pixels.
type Renderer struct{}

// Render overwrites every pixel of b. Pixel (x, y) gets blue = x+xOffset and
// green = y+yOffset, each mod 256; red and the unused byte are zero.
func (Renderer) Render(b *Buffer, xOffset, yOffset int) {
	if b == nil || b.Empty() {
		return
	}
	pix := b.Bytes()
	for y := 0; y < b.Height(); y++ {
		row := pix[y*b.StrideBytes():]
		green := uint32(uint8(y + yOffset))
		for x := 0; x < b.Width(); x++ {
			blue := uint32(uint8(x + xOffset))
			binary.LittleEndian.PutUint32(row[x*BytesPerPixel:], green<<8|blue)
		}
	}
}
