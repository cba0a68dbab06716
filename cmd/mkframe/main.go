package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"engine/frame"
)

func main() {
	var (
		outPath = flag.String("out", "", "Output .png file.")
		width   = flag.Int("width", 1280, "Buffer width.")
		height  = flag.Int("height", 720, "Buffer height.")
		xOff    = flag.Int("x", 0, "Horizontal pattern offset.")
		yOff    = flag.Int("y", 0, "Vertical pattern offset.")
		outW    = flag.Int("out-width", 0, "Stretch to this width (0 = buffer width).")
		outH    = flag.Int("out-height", 0, "Stretch to this height (0 = buffer height).")
		filter  = flag.String("filter", "nearest", "nearest|bilinear.")
		text    = flag.String("text", "", "Overlay lines separated by '|'.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: mkframe -out frame.png [-width 1280 -height 720] [-x 0 -y 0] [-out-width W -out-height H] [-filter nearest|bilinear] [-text a|b]")
	}
	f, err := frame.ParseFilter(strings.ToLower(*filter))
	if err != nil {
		fatalf("%v", err)
	}

	var lines []string
	if *text != "" {
		lines = strings.Split(*text, "|")
	}
	img, err := renderFrame(*width, *height, *xOff, *yOff, *outW, *outH, f, lines)
	if err != nil {
		fatalf("render: %v", err)
	}
	if err := writePNG(*outPath, img); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// captureDisplay keeps the frame handed to Show.
type captureDisplay struct {
	w, h int
	img  *image.RGBA
}

func (d *captureDisplay) Size() (int, int) { return d.w, d.h }

func (d *captureDisplay) Show(img *image.RGBA) error {
	d.img = image.NewRGBA(img.Rect)
	copy(d.img.Pix, img.Pix)
	return nil
}

func renderFrame(width, height, xOff, yOff, outW, outH int, f frame.Filter, lines []string) (*image.RGBA, error) {
	if outW <= 0 {
		outW = width
	}
	if outH <= 0 {
		outH = height
	}

	b := frame.NewBuffer(nil)
	if err := b.Resize(width, height); err != nil {
		return nil, err
	}
	defer b.Release()

	frame.Renderer{}.Render(b, xOff, yOff)
	if len(lines) > 0 {
		frame.NewOverlay().Draw(b, lines)
	}

	d := &captureDisplay{w: outW, h: outH}
	if err := frame.NewPresenter(d, f).Present(b, outW, outH); err != nil {
		return nil, err
	}
	if d.img == nil {
		return nil, fmt.Errorf("nothing presented")
	}
	return d.img, nil
}

func writePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
