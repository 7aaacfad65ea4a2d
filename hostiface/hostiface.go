// Package hostiface defines the contracts the camera core consumes from
// its host engine: the camera handle it commits to, the physics world it
// casts against, the per-tick input snapshot, and the player/body
// lookup. These are the only points where the core touches the rest of
// the engine.
package hostiface

import "github.com/pthm-cable/camcore/vecmath"

// Camera is the host's mutable view handle. SetFov/Fov and SetRoll/Roll
// are feature-detected by the dynamics post-pass; a host that doesn't
// implement them simply never has those optional interfaces asserted.
type Camera interface {
	SetYawPitch(yaw, pitch float32)
	SetLocation(loc vecmath.Vec3)
	Location() vecmath.Vec3
}

// FovCamera is optionally implemented by Camera for FOV modulation.
type FovCamera interface {
	SetFov(f float32)
	Fov() float32
}

// RollCamera is optionally implemented by Camera for dynamics-driven
// micro-roll.
type RollCamera interface {
	SetRoll(r float32)
	Roll() float32
}

// BodyID identifies a physics body. The concrete type is opaque to the
// core; the physics world and player adapters agree on it.
type BodyID = uint32

// RaycastRequest describes a single cast from->to, ignoring one body.
type RaycastRequest struct {
	From, To   vecmath.Vec3
	IgnoreBody BodyID
	// Radius is only consulted by RaycastEx; a plain Raycast call ignores it.
	Radius float32
}

// Physics is the read-only collaborator the collision solver casts
// against. A cast returning (nil, nil) means "no hit"; a non-nil error
// is treated as a transient failure and logged, never propagated to the
// tick.
type Physics interface {
	Position(body BodyID) (vecmath.Vec3, error)
	Raycast(req RaycastRequest) (*Hit, error)
}

// SphereCaster is optionally implemented by Physics to approximate a
// swept-sphere cast; when absent the solver falls back to a plain ray
// for every sample.
type SphereCaster interface {
	RaycastEx(req RaycastRequest) (*Hit, error)
}

// PlayerModel is the handle for the player's visible mesh, mutated only
// on mode switch.
type PlayerModel interface {
	SetVisible(bool)
}

// Player exposes the body the camera follows and its visual model.
type Player interface {
	BodyID() BodyID
	Model() PlayerModel
}

// Kinematics is optionally implemented by Player to feed the dynamics
// post-pass's grounded/running/speed gating. A player that doesn't
// implement it is treated as always airborne and stationary, so bob
// never fires but the rest of the pipeline still runs.
type Kinematics interface {
	Grounded() bool
	Running() bool
	Speed() float32
}
