package frame

import "testing"

func countWhite(b *Buffer) int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Pixel(x, y) == 0x00FFFFFF {
				n++
			}
		}
	}
	return n
}

func TestOverlayDrawsText(t *testing.T) {
	b := NewBuffer(nil)
	if err := b.Resize(160, 40); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	clear(b.Bytes())

	NewOverlay().Draw(b, []string{"frame 42", "pad0 A"})
	if countWhite(b) == 0 {
		t.Fatal("overlay drew no pixels")
	}
}

func TestOverlayClipsToSmallBuffer(t *testing.T) {
	b := NewBuffer(nil)
	if err := b.Resize(3, 2); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	clear(b.Bytes())
	NewOverlay().Draw(b, []string{"WWWWWWWWWWWWWWWW", "WWWW", "WWWW"})
}

func TestOverlayNoLines(t *testing.T) {
	b := NewBuffer(nil)
	if err := b.Resize(16, 16); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	clear(b.Bytes())
	NewOverlay().Draw(b, nil)
	if n := countWhite(b); n != 0 {
		t.Fatalf("white pixels = %d, want 0", n)
	}
}

func TestOverlayStopsAtBottom(t *testing.T) {
	o := NewOverlay()
	advance := int(o.font.GetYAdvance())

	b := NewBuffer(nil)
	if err := b.Resize(8, 3*advance); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	lines := []string{"a", "b", "c", "d", "e", "f"}
	if got, want := o.Draw(b, lines), (3*advance-int(o.Margin)+advance-1)/advance; got != want {
		t.Fatalf("Draw() = %d, want %d", got, want)
	}
}

func TestOverlayTallBufferStaysInRange(t *testing.T) {
	o := NewOverlay()
	advance := int(o.font.GetYAdvance())

	b := NewBuffer(nil)
	if err := b.Resize(1, 40000); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	lines := make([]string, 40000/advance+10)
	for i := range lines {
		lines[i] = "x"
	}
	got := o.Draw(b, lines)
	if got == 0 || got >= len(lines) {
		t.Fatalf("Draw() = %d, want a partial count", got)
	}
	// The last drawn baseline must still fit in int16.
	if last := int(o.Margin) + got*advance; last > 32767 {
		t.Fatalf("last baseline = %d, past int16 range", last)
	}
}
