// Package camctx holds the small shared types that cross the
// mode/zoom/dynamics/collision boundary without pulling those packages
// into a dependency cycle with the orchestrator: Pose, the per-tick
// input snapshot, and the single reusable Ctx scratch struct.
package camctx

import (
	"github.com/pthm-cable/camcore/hostiface"
	"github.com/pthm-cable/camcore/vecmath"
)

// Pose is a committed yaw/pitch/location triple.
type Pose struct {
	Location   vecmath.Vec3
	Yaw, Pitch float32
}

// Look holds the integrated look angles for the current tick.
type Look struct {
	Yaw, Pitch float32
}

// InputSnapshot is the host-supplied, per-tick immutable input state.
// KeysDown/JustPressed/JustReleased are keyed by the host's own
// key-code space.
type InputSnapshot struct {
	Dx, Dy       float32
	Wheel        float32
	KeysDown     map[int]bool
	JustPressed  map[int]bool
	JustReleased map[int]bool
	MouseButtons uint32
	Grabbed      bool
}

// Pressed reports whether code is currently held down.
func (s InputSnapshot) Pressed(code int) bool { return s.KeysDown != nil && s.KeysDown[code] }

// Rising reports whether code transitioned to pressed this tick.
func (s InputSnapshot) Rising(code int) bool { return s.JustPressed != nil && s.JustPressed[code] }

// ModeMeta is the immutable capability metadata a mode registers with.
// Collision quality bucket is derived from NumRays: low (<=4),
// high (<=6), ultra (>6).
type ModeMeta struct {
	SupportsZoom       bool
	HasCollision       bool
	NumRays            int
	PlayerModelVisible bool
}

// Quality buckets for the collision solver's sample count.
const (
	QualityLow = iota
	QualityHigh
	QualityUltra
)

// Quality derives the sampling bucket from NumRays.
func (m ModeMeta) Quality() int {
	switch {
	case m.NumRays <= 4:
		return QualityLow
	case m.NumRays <= 6:
		return QualityHigh
	default:
		return QualityUltra
	}
}

// Ctx is the orchestrator's single reusable per-tick scratch buffer.
// Modes read Body/Look/ZoomCurrent/Dt/Snap and write OutPos/Target; no
// stage allocates a new Ctx per tick.
type Ctx struct {
	Cam    hostiface.Camera
	Dt     float32
	Snap   InputSnapshot
	BodyID hostiface.BodyID

	BodyPos     vecmath.Vec3
	Look        Look
	ZoomCurrent float32

	// Outputs written by Mode.Update.
	OutPos vecmath.Vec3
	Target vecmath.Vec3
}
