package worldadapter

import "github.com/pthm-cable/camcore/vecmath"

// Position is an entity's world-space location.
type Position struct {
	X, Y, Z float32
}

// Vec returns p as a vecmath.Vec3.
func (p Position) Vec() vecmath.Vec3 { return vecmath.Vec3{X: p.X, Y: p.Y, Z: p.Z} }

// PositionFromVec builds a Position from a vecmath.Vec3.
func PositionFromVec(v vecmath.Vec3) Position { return Position{X: v.X, Y: v.Y, Z: v.Z} }

// ColliderShape distinguishes the two primitive shapes static geometry
// can carry.
type ColliderShape uint8

const (
	ColliderBox ColliderShape = iota
	ColliderSphere
)

// Collider is attached to every piece of static geometry the solver can
// cast against. A box is axis-aligned in world space, sized by
// HalfExtent; a sphere ignores HalfExtent and uses Radius.
type Collider struct {
	Shape      ColliderShape
	HalfExtent vecmath.Vec3
	Radius     float32
}

// Velocity is attached to the player body so future motion systems have
// somewhere to write; the adapter itself never integrates it.
type Velocity struct {
	X, Y, Z float32
}

// Kinematic holds the grounded/running/speed state the dynamics
// post-pass reads through hostiface.Kinematics.
type Kinematic struct {
	Grounded bool
	Running  bool
	Speed    float32
}
