package hal

import (
	"image"
	"sync"
)

// hostDisplay is a display surface whose size is set by the backend and
// whose last shown frame is kept for the backend to blit.
type hostDisplay struct {
	mu     sync.Mutex
	width  int
	height int
	frame  *image.RGBA
	shown  uint64
}

func newHostDisplay(width, height int) *hostDisplay {
	return &hostDisplay{width: width, height: height}
}

func (d *hostDisplay) Size() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.width, d.height
}

func (d *hostDisplay) Show(img *image.RGBA) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame = img
	d.shown++
	return nil
}

func (d *hostDisplay) resize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.width = width
	d.height = height
}

// snapshot returns the last frame passed to Show and the number of Show calls.
func (d *hostDisplay) snapshot() (*image.RGBA, uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame, d.shown
}
