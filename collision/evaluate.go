package collision

import (
	"math"

	"github.com/pthm-cable/camcore/hostiface"
	"github.com/pthm-cable/camcore/vecmath"
)

// evaluateSamples casts every sample from target and picks the winner:
// prefer the best unblocked sample; fall back to the best
// (furthest-along) blocked sample, pushed out along its normal.
func (s *Solver) evaluateSamples(samples []sample, desired, target vecmath.Vec3, bodyID hostiface.BodyID, phys hostiface.Physics) (chosen vecmath.Vec3, hadHit bool, normal vecmath.Vec3, hasNormal bool) {
	cast := s.caster(phys)

	bestUnblockedScore := float32(math.Inf(-1))
	bestUnblockedPos := desired
	haveUnblocked := false

	bestBlockedScore := float32(math.Inf(-1))
	bestBlockedPos := desired
	bestBlockedNormal := vecmath.Vec3{}
	haveBlockedNormal := false
	haveBlocked := false

	for _, smp := range samples {
		hit := cast(target, smp.pos, bodyID)
		if hit == nil {
			score := smp.weight*1000 - vecmath.Length(vecmath.Sub(smp.pos, desired))*10
			if score > bestUnblockedScore {
				bestUnblockedScore = score
				bestUnblockedPos = smp.pos
				haveUnblocked = true
			}
			continue
		}

		point, hasPoint := hit.Point()
		if hasPoint && !vecmath.IsFinite(point) {
			// Invalid numeric input: discard this sample entirely.
			continue
		}

		frac, hasFrac := hit.Fraction()
		if !hasFrac {
			if hasPoint {
				segLen := vecmath.Length(vecmath.Sub(smp.pos, target))
				if segLen > 1e-6 {
					frac = vecmath.Length(vecmath.Sub(point, target)) / segLen
				}
			}
		}
		frac = vecmath.Clamp01(frac)

		score := smp.weight*1000 + frac*500
		if score > bestBlockedScore {
			bestBlockedScore = score
			if hasPoint {
				bestBlockedPos = point
			} else {
				bestBlockedPos = smp.pos
			}
			haveBlocked = true
			if n, ok := hit.Normal(); ok && vecmath.IsFinite(n) {
				bestBlockedNormal = vecmath.Normalize(n)
				haveBlockedNormal = true
			} else {
				haveBlockedNormal = false
			}
		}
	}

	if haveUnblocked {
		return bestUnblockedPos, false, vecmath.Vec3{}, false
	}
	if haveBlocked {
		baseDir := vecmath.Normalize(vecmath.Sub(desired, target))
		n := baseDir
		if haveBlockedNormal {
			n = bestBlockedNormal
		}
		pushed := vecmath.Add(bestBlockedPos, vecmath.Scale(s.cfg.Pad, n))
		return pushed, true, n, haveBlockedNormal
	}

	// Nothing usable (every sample discarded as invalid): fall back to
	// the unmodified desired position rather than stalling the tick.
	return desired, false, vecmath.Vec3{}, false
}
