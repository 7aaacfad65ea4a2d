package modes

import (
	"github.com/pthm-cable/camcore/camctx"
	"github.com/pthm-cable/camcore/vecmath"
)

// Key codes the Free mode reads from the input snapshot. The host
// supplies its own key-code space; these are configured once at
// construction.
type FreeKeys struct {
	Forward, Back, Left, Right, Up, Down int
}

// Free is the decoupled fly-through camera: location is integrated
// locally from WASD-style input rather than following the player body.
// It never collides and does not track zoom, matching a
// debug/spectator camera.
type Free struct {
	Keys  FreeKeys
	Speed float32

	// loc is the one piece of genuinely mode-owned mutable state in
	// this package: a decoupled camera has no body to follow, so its
	// location must live somewhere between ticks, and nothing else
	// needs it.
	loc vecmath.Vec3
	set bool
}

// NewFree creates a free-fly mode with the given key bindings and
// movement speed in world units/second.
func NewFree(keys FreeKeys, speed float32) *Free {
	return &Free{Keys: keys, Speed: speed}
}

// ID implements Mode.
func (f *Free) ID() string { return "free" }

// Meta implements Mode.
func (f *Free) Meta() camctx.ModeMeta {
	return camctx.ModeMeta{SupportsZoom: false, HasCollision: false, NumRays: 0, PlayerModelVisible: true}
}

// Update implements Mode.
func (f *Free) Update(ctx *camctx.Ctx) {
	if !f.set {
		f.loc = ctx.BodyPos
		f.set = true
	}

	forward := vecmath.ForwardFromYawPitch(ctx.Look.Yaw, 0)
	right, _ := vecmath.OrthoBasis(forward)

	var move vecmath.Vec3
	if ctx.Snap.Pressed(f.Keys.Forward) {
		move = vecmath.Add(move, forward)
	}
	if ctx.Snap.Pressed(f.Keys.Back) {
		move = vecmath.Sub(move, forward)
	}
	if ctx.Snap.Pressed(f.Keys.Right) {
		move = vecmath.Add(move, right)
	}
	if ctx.Snap.Pressed(f.Keys.Left) {
		move = vecmath.Sub(move, right)
	}
	if ctx.Snap.Pressed(f.Keys.Up) {
		move = vecmath.Add(move, vecmath.WorldUp)
	}
	if ctx.Snap.Pressed(f.Keys.Down) {
		move = vecmath.Sub(move, vecmath.WorldUp)
	}

	if move != (vecmath.Vec3{}) {
		move = vecmath.Scale(f.Speed*ctx.Dt, vecmath.Normalize(move))
		f.loc = vecmath.Add(f.loc, move)
	}

	ctx.OutPos = f.loc
	ctx.Target = f.loc
}
