// Package vecmath provides the vector and rotation primitives shared by
// every stage of the camera pipeline: basis construction, exponential
// smoothing, angle clamping and lerp. Cross/dot/normalize and yaw/pitch
// rotation are expressed in terms of gonum's r3/quat packages and
// converted at the float32 boundary the rest of the core works in.
package vecmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a finite 3D vector in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Zero is the additive identity.
var Zero = Vec3{}

func (v Vec3) toR3() r3.Vec { return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)} }

func fromR3(v r3.Vec) Vec3 {
	return Vec3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// Add returns a+b.
func Add(a, b Vec3) Vec3 { return fromR3(r3.Add(a.toR3(), b.toR3())) }

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 { return fromR3(r3.Sub(a.toR3(), b.toR3())) }

// Scale returns v scaled by f.
func Scale(f float32, v Vec3) Vec3 { return fromR3(r3.Scale(float64(f), v.toR3())) }

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float32 { return float32(r3.Dot(a.toR3(), b.toR3())) }

// Cross returns a×b.
func Cross(a, b Vec3) Vec3 { return fromR3(r3.Cross(a.toR3(), b.toR3())) }

// Length returns the Euclidean norm of v.
func Length(v Vec3) float32 { return float32(r3.Norm(v.toR3())) }

// Normalize returns v scaled to unit length. Returns Zero if v is
// degenerate (length below 1e-9).
func Normalize(v Vec3) Vec3 {
	l := Length(v)
	if l < 1e-9 {
		return Zero
	}
	return Scale(1/l, v)
}

// IsFinite reports whether every component of v is finite (not NaN/Inf).
func IsFinite(v Vec3) bool {
	return isFiniteF(v.X) && isFiniteF(v.Y) && isFiniteF(v.Z)
}

func isFiniteF(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// Lerp linearly interpolates from a to b by t in [0,1] (unclamped if t
// is outside that range; callers that need clamping do so explicitly).
func Lerp(a, b Vec3, t float32) Vec3 {
	return Add(a, Scale(t, Sub(b, a)))
}

// LerpF linearly interpolates a scalar.
func LerpF(a, b, t float32) float32 {
	return a + (b-a)*t
}

// ExpSmooth exponentially smooths current toward target at rate s
// (continuous-time, units of 1/s) over time step dt. This converges to
// target regardless of dt and is frame-rate independent: halving dt and
// doubling the number of steps reproduces the same result, unlike a
// naive `cur + (target-cur)*s*dt` linearization which diverges for
// large s*dt.
func ExpSmooth(cur, target, s, dt float32) float32 {
	if s <= 0 || dt <= 0 {
		return cur
	}
	alpha := float32(1 - math.Exp(-float64(s*dt)))
	return cur + (target-cur)*alpha
}

// ExpSmoothVec3 applies ExpSmooth component-wise.
func ExpSmoothVec3(cur, target Vec3, s, dt float32) Vec3 {
	return Vec3{
		X: ExpSmooth(cur.X, target.X, s, dt),
		Y: ExpSmooth(cur.Y, target.Y, s, dt),
		Z: ExpSmooth(cur.Z, target.Z, s, dt),
	}
}

// ClampAngle clamps a to [-limit, limit].
func ClampAngle(a, limit float32) float32 {
	if a > limit {
		return limit
	}
	if a < -limit {
		return -limit
	}
	return a
}

// NormalizeAngle wraps a to (-pi, pi].
func NormalizeAngle(a float32) float32 {
	const twoPi = 2 * math.Pi
	for a > math.Pi {
		a -= twoPi
	}
	for a <= -math.Pi {
		a += twoPi
	}
	return a
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1].
func Clamp01(v float32) float32 { return Clamp(v, 0, 1) }

// SmoothStep returns the Hermite smoothstep of t clamped to [0,1]:
// 3t^2 - 2t^3.
func SmoothStep(t float32) float32 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}
