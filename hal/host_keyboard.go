//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	keys []keyBinding
}

type keyBinding struct {
	key  ebiten.Key
	code KeyCode
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{keys: []keyBinding{
		{ebiten.KeyW, KeyW},
		{ebiten.KeyA, KeyA},
		{ebiten.KeyS, KeyS},
		{ebiten.KeyD, KeyD},
		{ebiten.KeyQ, KeyQ},
		{ebiten.KeyE, KeyE},
		{ebiten.KeyArrowUp, KeyUp},
		{ebiten.KeyArrowDown, KeyDown},
		{ebiten.KeyArrowLeft, KeyLeft},
		{ebiten.KeyArrowRight, KeyRight},
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeySpace, KeySpace},
	}}
}

// poll queues a key event for every bound key whose state changed this tick.
// Auto-repeat is not reported.
func (k *hostKeyboard) poll(q *eventQueue) {
	for _, b := range k.keys {
		if inpututil.IsKeyJustPressed(b.key) {
			q.push(Event{Kind: EventKey, Key: b.code, Down: true})
		}
		if inpututil.IsKeyJustReleased(b.key) {
			q.push(Event{Kind: EventKey, Key: b.code, Down: false})
		}
	}
}
