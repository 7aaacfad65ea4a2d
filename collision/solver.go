// Package collision implements the multi-sample spherecast solver that
// keeps the camera from intersecting geometry while preserving framing
// and avoiding visible pops. It is the hardest piece of the pipeline:
// hit-fraction inference from heterogeneous hit shapes, wall-slide, pop
// suppression, temporal smoothing and ground clamping all interact and
// must run in a fixed order.
package collision

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/camcore/hostiface"
	"github.com/pthm-cable/camcore/vecmath"
)

// Solver resolves one mode's desired pose against the physics world
// each tick. A Solver owns a fixed-size scratch sample buffer so Solve
// never allocates on the hot path.
type Solver struct {
	cfg     Config
	samples [maxSamples]sample
	log     *slog.Logger

	tick          int64
	lastDebugTick int64
}

// New creates a Solver for cfg.
func New(cfg Config, logger *slog.Logger) *Solver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Solver{cfg: cfg, log: logger}
}

func (s *Solver) debugf(msg string, args ...any) {
	s.tick++
	every := int64(s.cfg.DebugLogEvery)
	if every > 0 && s.tick-s.lastDebugTick < every {
		return
	}
	s.lastDebugTick = s.tick
	s.log.Debug(msg, args...)
}

// caster abstracts Raycast vs. the optional RaycastEx sphere-cast.
func (s *Solver) caster(phys hostiface.Physics) func(from, to vecmath.Vec3, ignore hostiface.BodyID) *hostiface.Hit {
	if sc, ok := phys.(hostiface.SphereCaster); ok {
		return func(from, to vecmath.Vec3, ignore hostiface.BodyID) *hostiface.Hit {
			hit, err := sc.RaycastEx(hostiface.RaycastRequest{From: from, To: to, IgnoreBody: ignore, Radius: s.cfg.Radius})
			if err != nil {
				s.debugf("collision: raycastEx failed, treating as unblocked", "error", err)
				return nil
			}
			return hit
		}
	}
	return func(from, to vecmath.Vec3, ignore hostiface.BodyID) *hostiface.Hit {
		hit, err := phys.Raycast(hostiface.RaycastRequest{From: from, To: to, IgnoreBody: ignore})
		if err != nil {
			s.debugf("collision: raycast failed, treating as unblocked", "error", err)
			return nil
		}
		return hit
	}
}

// Solve resolves desired (the mode's proposed camera position) against
// target (the pivot the mode oriented around), returning the new
// committed camera location.
func (s *Solver) Solve(desired, target vecmath.Vec3, dt float32, bodyID hostiface.BodyID, quality int, phys hostiface.Physics, state *State) vecmath.Vec3 {
	// Step 1: clamp to minY, enforce minTargetDist.
	if desired.Y < s.cfg.MinY {
		desired.Y = s.cfg.MinY
	}
	dir := vecmath.Sub(desired, target)
	dirLen := vecmath.Length(dir)
	if dirLen <= 1e-6 {
		s.commit(desired, desired, target, dt, state)
		return desired
	}
	baseDir := vecmath.Scale(1/dirLen, dir)
	if dirLen < s.cfg.MinTargetDist {
		desired = vecmath.Add(target, vecmath.Scale(s.cfg.MinTargetDist, baseDir))
	}

	// Step 2: predictive velocity estimate.
	var velocity vecmath.Vec3
	hasVelocity := false
	if state.HasLast {
		velocity = vecmath.Scale(1/float32(math.Max(float64(dt), 1e-4)), vecmath.Sub(desired, state.LastCommitted))
		hasVelocity = true
	}

	// Step 3: orthonormal basis around the base ray.
	right, up := vecmath.OrthoBasis(baseDir)

	// Step 4: sample set construction.
	n := s.buildSamples(desired, target, baseDir, right, up, quality, velocity, hasVelocity)

	// Step 5/6: cast each sample, decide output.
	chosen, hadHit, hitNormal, hasNormal := s.evaluateSamples(s.samples[:n], desired, target, bodyID, phys)

	// Wall-slide, before pop suppression.
	if hadHit && s.cfg.Slide.Enabled && hasNormal {
		chosen = s.trySlide(chosen, desired, hitNormal, target, bodyID, phys)
	}

	// Re-enforce minTargetDist after adjustment.
	chosen = enforceMinDist(chosen, target, s.cfg.MinTargetDist)

	// Step 7: pop suppression.
	if state.HasLast {
		chosen = s.suppressPop(chosen, target, state)
	}

	// Step 8: temporal smoothing + per-tick step clamp.
	smoothRate := s.cfg.FreeSmooth
	if hadHit {
		smoothRate = s.cfg.WallSmooth
	}
	committed := chosen
	if state.HasLast {
		committed = vecmath.ExpSmoothVec3(state.LastCommitted, chosen, smoothRate, dt)
		committed = clampStep(state.LastCommitted, committed, s.cfg.MaxPullPerSec, dt)
	}

	// Step 9: ground clamp.
	if s.cfg.Ground.Enabled {
		committed = s.groundClamp(committed, bodyID, phys, state, dt)
	}

	// Step 10: commit.
	s.commit(committed, desired, target, dt, state)
	if hasVelocity {
		state.LastVelocity = velocity
		state.HasVelocity = true
	}
	return committed
}

func (s *Solver) commit(committed, desired, target vecmath.Vec3, dt float32, state *State) {
	state.LastCommitted = committed
	state.HasLast = true
}

func enforceMinDist(pos, target vecmath.Vec3, minDist float32) vecmath.Vec3 {
	d := vecmath.Sub(pos, target)
	l := vecmath.Length(d)
	if l <= 1e-6 {
		return pos
	}
	if l < minDist {
		return vecmath.Add(target, vecmath.Scale(minDist/l, d))
	}
	return pos
}

func clampStep(from, to vecmath.Vec3, maxPerSec, dt float32) vecmath.Vec3 {
	maxStep := maxPerSec * dt
	if maxStep < 0.01 {
		maxStep = 0.01
	}
	delta := vecmath.Sub(to, from)
	l := vecmath.Length(delta)
	if l <= maxStep || l <= 1e-9 {
		return to
	}
	return vecmath.Add(from, vecmath.Scale(maxStep/l, delta))
}
