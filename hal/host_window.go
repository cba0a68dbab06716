//go:build cgo

package hal

import (
	"errors"
	"fmt"
	"os"

	"engine/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window, hands the app a HAL backed by it and calls
// the returned step once per tick. The app is built on the first tick, after
// the window exists. RunWindow blocks until the window closes or the step
// reports ErrTerminated.
func RunWindow(cfg WindowConfig, newApp func(HAL) (func() error, error)) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: invalid window size %dx%d", ErrPlatformSetup, cfg.Width, cfg.Height)
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	pads := newHostGamepads()
	h := newHostHAL(out, cfg.Width, cfg.Height, pads)
	g := &hostGame{
		h:    h,
		pads: pads,
		kbd:  newHostKeyboard(),
		app:  &appStarter{h: h, newApp: newApp},
	}
	title := cfg.Title
	if title == "" {
		title = "Engine"
	}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(cfg.VSync)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil {
		if g.app.err != nil {
			return g.app.err
		}
		if !g.started {
			return fmt.Errorf("%w: %v", ErrPlatformSetup, err)
		}
		return err
	}
	return nil
}

type hostGame struct {
	h    *hostHAL
	pads *hostGamepads
	kbd  *hostKeyboard
	app  *appStarter

	fbImg   *ebiten.Image
	op      ebiten.DrawImageOptions
	focused bool
	started bool
}

func (g *hostGame) Update() error {
	g.started = true
	g.pump()
	if err := g.app.Step(); err != nil {
		if errors.Is(err, ErrTerminated) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// pump translates this tick's window state into queued events.
func (g *hostGame) pump() {
	if ebiten.IsWindowBeingClosed() {
		g.h.events.pushClose()
	}
	if f := ebiten.IsFocused(); f != g.focused {
		g.focused = f
		detail := "deactivate"
		if f {
			detail = "activate"
		}
		g.h.logger.WriteLineString("window: " + detail)
		g.h.events.push(Event{Kind: EventOther, Detail: detail})
	}
	g.kbd.poll(g.h.events)
	g.pads.refresh()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	frame, _ := g.h.display.snapshot()
	if frame == nil {
		return
	}
	fw, fh := frame.Rect.Dx(), frame.Rect.Dy()
	if fw <= 0 || fh <= 0 {
		return
	}
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fw || g.fbImg.Bounds().Dy() != fh {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fw, fh)
	}
	g.fbImg.WritePixels(frame.Pix[:4*fw*fh])

	// The presenter already stretched to the last reported size; a resize
	// between Update and Draw is covered by scaling the stale frame.
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	g.op = ebiten.DrawImageOptions{}
	if sw != fw || sh != fh {
		g.op.GeoM.Scale(float64(sw)/float64(fw), float64(sh)/float64(fh))
	}
	screen.DrawImage(g.fbImg, &g.op)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.h.display.resize(outsideWidth, outsideHeight)
	return max(outsideWidth, 1), max(outsideHeight, 1)
}
