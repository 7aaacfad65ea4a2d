package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/camcore/camctx"
)

// watchedKeys is every key code a registered mode or the keymap config
// might query this tick. camctx.InputSnapshot is host-populated, so the
// host decides which keys are worth polling.
var watchedKeys = []int32{
	rl.KeyW, rl.KeyA, rl.KeyS, rl.KeyD,
	rl.KeySpace, rl.KeyLeftControl,
	rl.KeyV, rl.KeyLeftBracket, rl.KeyRightBracket,
}

// pollInput builds this tick's InputSnapshot from raylib's keyboard and
// mouse state.
func pollInput(grabbed bool) camctx.InputSnapshot {
	down := make(map[int]bool, len(watchedKeys))
	justPressed := make(map[int]bool, len(watchedKeys))
	for _, k := range watchedKeys {
		if rl.IsKeyDown(k) {
			down[int(k)] = true
		}
		if rl.IsKeyPressed(k) {
			justPressed[int(k)] = true
		}
	}

	delta := rl.GetMouseDelta()
	wheel := rl.GetMouseWheelMove()

	return camctx.InputSnapshot{
		Dx:          delta.X,
		Dy:          delta.Y,
		Wheel:       wheel,
		KeysDown:    down,
		JustPressed: justPressed,
		Grabbed:     grabbed,
	}
}
