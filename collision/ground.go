package collision

import (
	"github.com/pthm-cable/camcore/hostiface"
	"github.com/pthm-cable/camcore/vecmath"
)

// groundClamp probes straight down from above committed and, if the
// probe hits ground-like geometry within clearance, smoothly rewrites
// the Y so the camera never sinks through the floor. Rise is
// rate-limited so a clamp never snaps the camera upward.
func (s *Solver) groundClamp(committed vecmath.Vec3, bodyID hostiface.BodyID, phys hostiface.Physics, state *State, dt float32) vecmath.Vec3 {
	from := vecmath.Vec3{X: committed.X, Y: committed.Y + s.cfg.Ground.ProbeUp, Z: committed.Z}
	to := vecmath.Vec3{X: committed.X, Y: committed.Y - s.cfg.Ground.ProbeDown, Z: committed.Z}

	cast := s.caster(phys)
	hit := cast(from, to, bodyID)
	if hit == nil {
		state.HasGroundY = false
		return committed
	}

	point, hasPoint := hit.Point()
	if !hasPoint || !vecmath.IsFinite(point) {
		return committed
	}
	if n, ok := hit.Normal(); ok && vecmath.IsFinite(n) && n.Y < s.cfg.Ground.MinNormalY {
		// Steep surface (wall, overhang underside): not ground.
		return committed
	}

	floor := point.Y + s.cfg.Ground.Clearance
	if committed.Y >= floor {
		state.GroundY = floor
		state.HasGroundY = true
		return committed
	}

	targetY := floor
	newY := committed.Y
	if state.HasGroundY {
		newY = vecmath.ExpSmooth(committed.Y, targetY, s.cfg.Ground.Smooth, dt)
	} else {
		newY = targetY
	}
	maxRise := s.cfg.Ground.MaxRisePerSec * dt
	if maxRise < 0 {
		maxRise = 0
	}
	if newY-committed.Y > maxRise {
		newY = committed.Y + maxRise
	}

	state.GroundY = floor
	state.HasGroundY = true

	clamped := vecmath.Vec3{X: committed.X, Y: newY, Z: committed.Z}
	// Rewrite LastCommitted.Y too, so next tick's smoothing/step-clamp
	// doesn't fight its way back down through the floor.
	state.LastCommitted.Y = newY
	return clamped
}
