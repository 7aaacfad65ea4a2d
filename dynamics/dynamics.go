// Package dynamics implements the cinematic post-pass applied after a
// mode computes its desired pose: head bob, sway, handheld drift, the
// jump/land spring, the accel/brake kick, and FOV modulation. Every
// smoother uses 1-e^(-s*dt) so behavior holds at any frame rate.
package dynamics

import (
	"math"

	"github.com/pthm-cable/camcore/hostiface"
	"github.com/pthm-cable/camcore/vecmath"
)

// Input is the per-tick state the post-pass reads. Cam is optional
// (nil is fine) and is only consulted for FOV/roll feature detection.
type Input struct {
	Cam            hostiface.Camera
	Dt             float32
	Grounded       bool
	Running        bool
	Speed          float32
	MouseDx        float32
	MouseDy        float32
}

// Output is the local-axis offset and optional FOV/roll the post-pass
// produced this tick.
type Output struct {
	OffX, OffY, OffZ float32
	Fov              float32
	FovApplied       bool
	Roll             float32
	RollApplied      bool
}

// State accumulates all dynamics oscillators across ticks. Owned
// exclusively by the orchestrator and reset wholesale on mode switch.
type State struct {
	cfg Config

	bobT           float32
	swayX, swayY   float32
	driftT         float32
	driftX, driftY float32
	springY, springVY float32
	kickZ, kickVZ     float32
	fovCurrent        float32
	rollCurrent       float32
}

// New creates dynamics state from cfg.
func New(cfg Config) *State {
	s := &State{cfg: cfg}
	s.fovCurrent = cfg.Fov.Base
	return s
}

// OnModeSwitched resets every accumulator, keeping only the config and
// the FOV baseline.
func (s *State) OnModeSwitched() {
	cfg := s.cfg
	*s = State{cfg: cfg, fovCurrent: cfg.Fov.Base}
}

// OnJump injects a downward velocity spike into the spring on takeoff.
func (s *State) OnJump(strength float32) {
	s.springVY -= strength
}

// OnLand injects a compress-then-rebound impulse into the spring on
// landing.
func (s *State) OnLand(strength float32) {
	s.springVY -= strength
}

// OnAccelerate injects a backward kick on the forward axis (brake/accel feel).
func (s *State) OnAccelerate(strength float32) {
	s.kickVZ -= strength
}

// Update advances every oscillator by one tick and returns the
// combined local-axis offset (and optional FOV/roll).
func (s *State) Update(in Input) Output {
	dt := in.Dt
	var out Output

	// Sway: target proportional to mouse delta, exp-smoothed.
	swayTargetX := -in.MouseDx * s.cfg.Sway.YawMul
	swayTargetY := -in.MouseDy * s.cfg.Sway.PitchMul
	s.swayX = vecmath.ExpSmooth(s.swayX, swayTargetX, s.cfg.Sway.Smooth, dt)
	s.swayY = vecmath.ExpSmooth(s.swayY, swayTargetY, s.cfg.Sway.Smooth, dt)

	// Handheld drift: two decorrelated sinusoids at incommensurate
	// frequencies f and f*1.37, exp-smoothed toward the raw signal.
	s.driftT += dt
	f := s.cfg.Drift.Freq
	driftTargetX := float32(math.Sin(float64(s.driftT*f))) * s.cfg.Drift.AmpX
	driftTargetY := float32(math.Sin(float64(s.driftT*f*1.37))) * s.cfg.Drift.AmpY
	s.driftX = vecmath.ExpSmooth(s.driftX, driftTargetX, s.cfg.Drift.Smooth, dt)
	s.driftY = vecmath.ExpSmooth(s.driftY, driftTargetY, s.cfg.Drift.Smooth, dt)

	// Head bob: gated on grounded && speed>0.12.
	var bobX, bobY float32
	k := float32(0)
	if in.Grounded && in.Speed > 0.12 {
		freq := s.cfg.Bob.WalkFreq
		ampX, ampY := s.cfg.Bob.WalkAmpX, s.cfg.Bob.WalkAmpY
		denom := float32(5)
		if in.Running {
			freq = s.cfg.Bob.RunFreq
			ampX, ampY = s.cfg.Bob.RunAmpX, s.cfg.Bob.RunAmpY
			denom = 8
		}
		s.bobT += dt
		k = vecmath.Clamp01(in.Speed / denom)
		bobY = float32(math.Sin(float64(s.bobT*freq))) * ampY * k
		bobX = float32(math.Cos(float64(s.bobT*freq/2))) * ampX * k
	}

	// Spring (jump/land) and kick (accel/brake): damped harmonic
	// oscillators driven back toward zero, integrated the same way as
	// the velocity/drag stepping elsewhere in the pipeline.
	s.springVY += (-s.cfg.Spring.Stiffness*s.springY - s.cfg.Spring.Damping*s.springVY) * dt
	s.springY += s.springVY * dt

	s.kickVZ += (-s.cfg.Kick.Stiffness*s.kickZ - s.cfg.Kick.Damping*s.kickVZ) * dt
	s.kickZ += s.kickVZ * dt

	out.OffX = s.swayX + s.driftX + bobX
	out.OffY = s.swayY + s.driftY + bobY + s.springY
	out.OffZ = s.kickZ

	if s.cfg.Fov.Enabled {
		target := s.cfg.Fov.Base
		if in.Running {
			target += s.cfg.Fov.RunAdd * k
		}
		s.fovCurrent = vecmath.ExpSmooth(s.fovCurrent, target, s.cfg.Fov.Smooth, dt)
		out.Fov = s.fovCurrent
		if _, ok := in.Cam.(hostiface.FovCamera); ok {
			out.FovApplied = true
		}
	}

	if s.cfg.Roll.Enabled {
		rollTarget := s.swayX * s.cfg.Roll.Mul
		s.rollCurrent = vecmath.ExpSmooth(s.rollCurrent, rollTarget, s.cfg.Roll.Smooth, dt)
		out.Roll = s.rollCurrent
		if _, ok := in.Cam.(hostiface.RollCamera); ok {
			out.RollApplied = true
		}
	}

	return out
}

// Apply commits out's local-axis offsets onto pos using the given
// right/up/forward basis, and applies FOV/roll to cam when available.
func Apply(pos vecmath.Vec3, right, up, forward vecmath.Vec3, out Output, cam hostiface.Camera) vecmath.Vec3 {
	result := vecmath.Add(pos, vecmath.Scale(out.OffX, right))
	result = vecmath.Add(result, vecmath.Scale(out.OffY, up))
	result = vecmath.Add(result, vecmath.Scale(out.OffZ, forward))

	if out.FovApplied {
		if fc, ok := cam.(hostiface.FovCamera); ok {
			fc.SetFov(out.Fov)
		}
	}
	if out.RollApplied {
		if rc, ok := cam.(hostiface.RollCamera); ok {
			rc.SetRoll(out.Roll)
		}
	}
	return result
}
