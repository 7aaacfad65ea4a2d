package vecmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// WorldUp and WorldForward are the engine's fixed reference axes.
var (
	WorldUp      = Vec3{X: 0, Y: 1, Z: 0}
	WorldForward = Vec3{X: 0, Y: 0, Z: -1}
)

func axisAngle(axis r3.Vec, angle float32) quat.Number {
	axis = r3.Unit(axis)
	s, c := math.Sincos(float64(angle) / 2)
	return quat.Number{Real: c, Imag: axis.X * s, Jmag: axis.Y * s, Kmag: axis.Z * s}
}

func rotateVec(q quat.Number, v r3.Vec) r3.Vec {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vec{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// ForwardFromYawPitch rotates WorldForward by yaw (about +Y) then pitch
// (about the yawed +X axis), returning a unit direction vector. This is
// the single place in the core that composes rotations via quaternions.
func ForwardFromYawPitch(yaw, pitch float32) Vec3 {
	qYaw := axisAngle(r3.Vec{X: 0, Y: 1, Z: 0}, yaw)
	qPitch := axisAngle(r3.Vec{X: 1, Y: 0, Z: 0}, pitch)
	q := quat.Mul(qYaw, qPitch)
	return Normalize(fromR3(rotateVec(q, WorldForward.toR3())))
}

// OrthoBasis builds a right/up orthonormal pair perpendicular to base,
// by crossing against world-up and falling back to world-forward when
// base is (near-)parallel to world-up.
func OrthoBasis(base Vec3) (right, up Vec3) {
	right = Cross(WorldUp, base)
	if Length(right) <= 1e-6 {
		right = Cross(WorldForward, base)
	}
	right = Normalize(right)
	up = Normalize(Cross(base, right))
	return right, up
}
