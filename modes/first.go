package modes

import (
	"github.com/pthm-cable/camcore/camctx"
	"github.com/pthm-cable/camcore/vecmath"
)

// First is the first-person camera: the view sits at the body's head
// offset and never participates in collision or zoom.
type First struct {
	HeadOffset vecmath.Vec3
}

// NewFirst creates a first-person mode with the given head offset
// (typically {0, eyeHeight, 0}).
func NewFirst(headOffset vecmath.Vec3) *First {
	return &First{HeadOffset: headOffset}
}

// ID implements Mode.
func (f *First) ID() string { return "first" }

// Meta implements Mode.
func (f *First) Meta() camctx.ModeMeta {
	return camctx.ModeMeta{SupportsZoom: false, HasCollision: false, NumRays: 0, PlayerModelVisible: false}
}

// Update implements Mode.
func (f *First) Update(ctx *camctx.Ctx) {
	ctx.OutPos = vecmath.Add(ctx.BodyPos, f.HeadOffset)
	ctx.Target = vecmath.Add(ctx.BodyPos, vecmath.Vec3{X: 0, Y: f.HeadOffset.Y, Z: 0})
}
