package collision

import (
	"github.com/pthm-cable/camcore/hostiface"
	"github.com/pthm-cable/camcore/vecmath"
)

// trySlide decomposes the residual (desired-pushed) move into a
// component into the wall and a tangential component, removes
// `strength` of the into-wall part, and validates the slid candidate
// with a second cast, adopting it only if clear.
func (s *Solver) trySlide(pushed, desired, normal, target vecmath.Vec3, bodyID hostiface.BodyID, phys hostiface.Physics) vecmath.Vec3 {
	if vecmath.Dot(normal, normal) < 1e-9 {
		return pushed
	}
	move := vecmath.Sub(desired, pushed)
	into := vecmath.Dot(move, normal)
	if into > -s.cfg.Slide.MinNormalDot {
		// Not meaningfully pushing into the wall; nothing to slide.
		return pushed
	}
	slidMove := vecmath.Sub(move, vecmath.Scale(s.cfg.Slide.Strength*into, normal))
	candidate := vecmath.Add(pushed, slidMove)

	cast := s.caster(phys)
	if hit := cast(target, candidate, bodyID); hit == nil {
		return candidate
	}
	return pushed
}

// suppressPop caps how far the new distance-to-target may grow versus
// the previous committed distance, scaling the direction if needed.
func (s *Solver) suppressPop(chosen, target vecmath.Vec3, state *State) vecmath.Vec3 {
	lastDist := vecmath.Length(vecmath.Sub(state.LastCommitted, target))
	newDelta := vecmath.Sub(chosen, target)
	newDist := vecmath.Length(newDelta)
	if newDist <= 1e-6 {
		return chosen
	}
	growthCap := lastDist*(1-s.cfg.PopSuppression) + 0.12
	if growthCap < 0.06 {
		growthCap = 0.06
	}
	maxDist := lastDist + growthCap
	if newDist <= maxDist {
		return chosen
	}
	return vecmath.Add(target, vecmath.Scale(maxDist/newDist, newDelta))
}
