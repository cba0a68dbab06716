// Package frame owns the offscreen pixel buffer and the code that fills it and
// puts it on screen.
package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// BytesPerPixel is the size of one XRGB8888 pixel.
const BytesPerPixel = 4

// MaxBufferBytes bounds a single allocation made by the default allocator.
const MaxBufferBytes = 1 << 30

var (
	ErrAllocation  = errors.New("frame: buffer allocation failed")
	ErrInvalidSize = errors.New("frame: invalid buffer size")
)

// PixelFormat defines the buffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatXRGB8888 is one little-endian 32-bit word per pixel,
	// 0xXXRRGGBB: memory order is blue, green, red, unused.
	PixelFormatXRGB8888 PixelFormat = iota + 1
)

// RowOrder says which memory row is drawn at the top of the image.
type RowOrder uint8

// RowsTopDown stores row 0 as the topmost visible row, so presenting needs no
// flip.
const RowsTopDown RowOrder = 1

// Format describes the memory layout of a Buffer.
type Format struct {
	Pixel PixelFormat
	Rows  RowOrder
}

// Allocator returns size bytes of pixel memory. Contents are unspecified.
type Allocator func(size int) ([]byte, error)

// DefaultAllocator allocates from the Go heap, refusing requests above
// MaxBufferBytes.
func DefaultAllocator(size int) ([]byte, error) {
	if size < 0 || size > MaxBufferBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrAllocation, size)
	}
	return make([]byte, size), nil
}

// Buffer is an offscreen pixel buffer.
type Buffer struct {
	width  int
	height int
	stride int
	format Format
	pix    []byte

	alloc Allocator
}

// NewBuffer returns an empty buffer. A nil alloc uses DefaultAllocator.
func NewBuffer(alloc Allocator) *Buffer {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	return &Buffer{alloc: alloc}
}

// Resize replaces the pixel memory with a fresh width x height region.
//
// The previous memory is released before the new region is requested. If
// the request fails the buffer is left empty.
func (b *Buffer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	size, ok := bufferSize(width, height)
	if !ok {
		b.Release()
		return fmt.Errorf("%w: %dx%d overflows", ErrAllocation, width, height)
	}

	b.Release()

	pix, err := b.alloc(size)
	if err != nil {
		if !errors.Is(err, ErrAllocation) {
			err = fmt.Errorf("%w: %v", ErrAllocation, err)
		}
		return err
	}
	if len(pix) < size {
		return fmt.Errorf("%w: allocator returned %d of %d bytes", ErrAllocation, len(pix), size)
	}

	b.width = width
	b.height = height
	b.stride = width * BytesPerPixel
	b.format = Format{Pixel: PixelFormatXRGB8888, Rows: RowsTopDown}
	b.pix = pix[:size]
	return nil
}

func bufferSize(width, height int) (int, bool) {
	if width > math.MaxInt/BytesPerPixel {
		return 0, false
	}
	stride := width * BytesPerPixel
	if height > math.MaxInt/stride {
		return 0, false
	}
	return stride * height, true
}

// Release drops the pixel memory and leaves the buffer empty.
func (b *Buffer) Release() {
	b.pix = nil
	b.width = 0
	b.height = 0
	b.stride = 0
	b.format = Format{}
}

func (b *Buffer) Empty() bool      { return b.pix == nil }
func (b *Buffer) Width() int       { return b.width }
func (b *Buffer) Height() int      { return b.height }
func (b *Buffer) StrideBytes() int { return b.stride }
func (b *Buffer) Format() Format   { return b.format }

// Bytes returns the pixel memory, height*stride bytes, or nil when empty.
func (b *Buffer) Bytes() []byte { return b.pix }

// Pixel returns the XRGB8888 word at (x, y), or 0 out of bounds.
func (b *Buffer) Pixel(x, y int) uint32 {
	off, ok := b.offset(x, y)
	if !ok {
		return 0
	}
	return binary.LittleEndian.Uint32(b.pix[off:])
}

// SetPixel stores an XRGB8888 word at (x, y). Out of bounds is ignored.
func (b *Buffer) SetPixel(x, y int, v uint32) {
	off, ok := b.offset(x, y)
	if !ok {
		return
	}
	binary.LittleEndian.PutUint32(b.pix[off:], v)
}

func (b *Buffer) offset(x, y int) (int, bool) {
	if b.pix == nil || x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	return y*b.stride + x*BytesPerPixel, true
}
