package collision

import (
	"math"

	"github.com/pthm-cable/camcore/camctx"
	"github.com/pthm-cable/camcore/vecmath"
)

// buildSamples fills s.samples and returns the count written.
func (s *Solver) buildSamples(desired, target, baseDir, right, up vecmath.Vec3, quality int, velocity vecmath.Vec3, hasVelocity bool) int {
	n := 0
	s.samples[n] = sample{pos: desired, weight: 1.00}
	n++

	radius := s.cfg.Radius * s.cfg.RingScale
	ring := ringCount(quality)
	for i := 0; i < ring && n < maxSamples; i++ {
		theta := 2 * math.Pi * float64(i) / float64(ring)
		offset := vecmath.Add(
			vecmath.Scale(radius*float32(math.Cos(theta)), right),
			vecmath.Scale(radius*float32(math.Sin(theta)), up),
		)
		s.samples[n] = sample{pos: vecmath.Add(desired, offset), weight: 0.88}
		n++
	}

	if s.cfg.VerticalSamples && quality != camctx.QualityLow && n+1 < maxSamples {
		s.samples[n] = sample{pos: vecmath.Add(desired, vecmath.Scale(radius, up)), weight: 0.82}
		n++
		s.samples[n] = sample{pos: vecmath.Sub(desired, vecmath.Scale(radius, up)), weight: 0.82}
		n++
	}

	if s.cfg.Predictive && hasVelocity && n < maxSamples {
		speed := vecmath.Length(velocity)
		if speed > 0.2 {
			lead := vecmath.Clamp(speed*0.045, 0.02, 0.28)
			dirUnit := vecmath.Scale(1/speed, velocity)
			s.samples[n] = sample{pos: vecmath.Add(desired, vecmath.Scale(lead, dirUnit)), weight: 0.90}
			n++
		}
	}

	return n
}
