package modes

import (
	"github.com/pthm-cable/camcore/camctx"
	"github.com/pthm-cable/camcore/vecmath"
)

// Third is the over-the-shoulder third-person camera: it orbits a
// pivot offset from the body at the zoom controller's current
// distance, and requests collision resolution.
type Third struct {
	ShoulderOffset vecmath.Vec3
	NumRays        int
}

// NewThird creates a third-person mode. numRays should be in [1,16];
// 6 sits in the "high quality" sampling bucket.
func NewThird(shoulderOffset vecmath.Vec3, numRays int) *Third {
	if numRays <= 0 {
		numRays = 6
	}
	return &Third{ShoulderOffset: shoulderOffset, NumRays: numRays}
}

// ID implements Mode.
func (t *Third) ID() string { return "third" }

// Meta implements Mode.
func (t *Third) Meta() camctx.ModeMeta {
	return camctx.ModeMeta{SupportsZoom: true, HasCollision: true, NumRays: t.NumRays, PlayerModelVisible: true}
}

// Update implements Mode.
func (t *Third) Update(ctx *camctx.Ctx) {
	pivot := vecmath.Add(ctx.BodyPos, t.ShoulderOffset)
	forward := vecmath.ForwardFromYawPitch(ctx.Look.Yaw, ctx.Look.Pitch)
	// desired = pivot - forward*zoom: the camera trails the pivot
	// along the look direction by the zoom distance.
	ctx.OutPos = vecmath.Sub(pivot, vecmath.Scale(ctx.ZoomCurrent, forward))
	ctx.Target = pivot
}
