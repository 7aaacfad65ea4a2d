package hostiface

import "github.com/pthm-cable/camcore/vecmath"

// VecSource supplies a Vec3 either as a stored value or as a
// zero-argument accessor, so physics backends that compute hit data
// lazily don't have to materialize every field up front. Resolved
// exactly once per cast by Hit's accessors.
type VecSource struct {
	value    vecmath.Vec3
	fn       func() vecmath.Vec3
	hasValue bool
}

// VecValue wraps a concrete vector.
func VecValue(v vecmath.Vec3) VecSource { return VecSource{value: v, hasValue: true} }

// VecFunc wraps a zero-argument accessor.
func VecFunc(fn func() vecmath.Vec3) VecSource { return VecSource{fn: fn} }

// resolve returns the concrete vector and whether a source was set at all.
func (s VecSource) resolve() (vecmath.Vec3, bool) {
	if s.hasValue {
		return s.value, true
	}
	if s.fn != nil {
		return s.fn(), true
	}
	return vecmath.Zero, false
}

// ScalarSource mirrors VecSource for a single float (fraction/alpha).
type ScalarSource struct {
	value float32
	fn    func() float32
	has   bool
}

// ScalarValue wraps a concrete scalar.
func ScalarValue(f float32) ScalarSource { return ScalarSource{value: f, has: true} }

// ScalarFunc wraps a zero-argument scalar accessor.
func ScalarFunc(fn func() float32) ScalarSource { return ScalarSource{fn: fn} }

func (s ScalarSource) resolve() (float32, bool) {
	if s.has {
		return s.value, true
	}
	if s.fn != nil {
		return s.fn(), true
	}
	return 0, false
}

// Hit is the normalised result of a raycast, parsed once from whatever
// heterogeneous shape the physics backend returned (point/position/
// hitPos/pos/contact/hitPoint; normal/n/hitNormal; fraction/t/alpha/
// hitFraction; see NewHit's callers in package worldadapter for a
// concrete example). After construction the core never re-probes the
// backend's native shape.
type Hit struct {
	point    VecSource
	normal   VecSource
	fraction ScalarSource
	hasPoint bool
}

// NewHit constructs a normalised Hit from resolved sources.
func NewHit(point VecSource, normal VecSource, fraction ScalarSource) *Hit {
	p, hasPoint := point.resolve()
	if hasPoint {
		point = VecValue(p)
	}
	if n, ok := normal.resolve(); ok {
		normal = VecValue(n)
	}
	if f, ok := fraction.resolve(); ok {
		fraction = ScalarValue(f)
	}
	return &Hit{point: point, normal: normal, fraction: fraction, hasPoint: hasPoint}
}

// Point returns the world-space contact point, if the backend supplied one.
func (h *Hit) Point() (vecmath.Vec3, bool) {
	if h == nil {
		return vecmath.Zero, false
	}
	return h.point.resolve()
}

// Normal returns the surface normal at the contact point, if available.
func (h *Hit) Normal() (vecmath.Vec3, bool) {
	if h == nil {
		return vecmath.Zero, false
	}
	return h.normal.resolve()
}

// Fraction returns the hit fraction in [0,1] along the cast segment, if
// the backend supplied one directly (otherwise the collision solver
// derives it from the hit point and segment length).
func (h *Hit) Fraction() (float32, bool) {
	if h == nil {
		return 0, false
	}
	return h.fraction.resolve()
}
