package frame

import (
	"bytes"
	"testing"
)

func TestRenderGradient4x4(t *testing.T) {
	b := NewBuffer(nil)
	if err := b.Resize(4, 4); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	Renderer{}.Render(b, 0, 0)

	var want []byte
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want = append(want, byte(x), byte(y), 0, 0)
		}
	}
	if got := b.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("Bytes() = % x\nwant      % x", got, want)
	}
}

func TestRenderOffsetsWrap(t *testing.T) {
	b := NewBuffer(nil)
	if err := b.Resize(300, 3); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	Renderer{}.Render(b, 250, 255)

	if got := b.Pixel(0, 0); got != 0x0000FFFA {
		t.Fatalf("Pixel(0, 0) = %#x, want 0xfffa", got)
	}
	if got := b.Pixel(6, 1); got != 0x00000000 {
		t.Fatalf("Pixel(6, 1) = %#x, want 0", got)
	}
	if got := b.Pixel(299, 2); got != 0x00000125 {
		t.Fatalf("Pixel(299, 2) = %#x, want 0x125", got)
	}
}

func TestRenderNegativeOffsets(t *testing.T) {
	b := NewBuffer(nil)
	if err := b.Resize(2, 2); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	Renderer{}.Render(b, -1, -2)
	if got := b.Pixel(0, 0); got != 0x0000FEFF {
		t.Fatalf("Pixel(0, 0) = %#x, want 0xfeff", got)
	}
	if got := b.Pixel(1, 1); got != 0x0000FF00 {
		t.Fatalf("Pixel(1, 1) = %#x, want 0xff00", got)
	}
}

func TestRenderFullyOverwrites(t *testing.T) {
	b := NewBuffer(nil)
	if err := b.Resize(7, 5); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	for i := range b.Bytes() {
		b.Bytes()[i] = 0xEE
	}

	r := Renderer{}
	r.Render(b, 3, 9)
	r.Render(b, 4, 11)

	fresh := NewBuffer(nil)
	if err := fresh.Resize(7, 5); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	r.Render(fresh, 4, 11)

	if !bytes.Equal(b.Bytes(), fresh.Bytes()) {
		t.Fatal("second Render left residue from earlier contents")
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			want := uint32(byte(y+11))<<8 | uint32(byte(x+4))
			if got := b.Pixel(x, y); got != want {
				t.Fatalf("Pixel(%d, %d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestRenderEmptyBuffer(t *testing.T) {
	Renderer{}.Render(NewBuffer(nil), 1, 1)
	Renderer{}.Render(nil, 1, 1)
}
