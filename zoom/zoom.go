// Package zoom implements the discrete-step, smoothly-interpolated zoom
// controller used by zoom-capable camera modes.
package zoom

import (
	"math"

	"github.com/pthm-cable/camcore/camerror"
	"github.com/pthm-cable/camcore/vecmath"
)

// Config configures a Controller. Steps must be a non-empty ascending
// sequence of positive distances.
type Config struct {
	Steps       []float32 `yaml:"steps"`
	Index       int       `yaml:"index"`
	Smooth      float32   `yaml:"smooth"`
	Cooldown    float32   `yaml:"cooldown"`
	InvertWheel bool      `yaml:"invert_wheel"`
	Min         float32   `yaml:"min"`
	Max         float32   `yaml:"max"`
	StepStride  int       `yaml:"step_stride"`
}

// Intent is the per-tick zoom input, derived by the orchestrator from
// the raw input snapshot before calling Update.
type Intent struct {
	Wheel   float32 // accumulated wheel delta, consumed whole this tick
	ZoomIn  bool
	ZoomOut bool
}

// Controller owns one mode's zoom state. Invariant: min <= current <=
// max, min <= target <= max, target == clamp(steps[index], min, max).
type Controller struct {
	steps             []float32
	index             int
	minIndex, maxIndex int
	current, target   float32
	cooldownRemaining float32
	cooldown          float32
	stepStride        int
	invertWheel       bool
	smooth            float32
	min, max          float32
}

// New builds a Controller from cfg, returning an error if steps is
// empty (contract violation, fatal at construction).
func New(cfg Config) (*Controller, error) {
	c := &Controller{}
	if err := c.Configure(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure (re)applies cfg. Non-array/empty steps is rejected;
// indices are clamped into range.
func (c *Controller) Configure(cfg Config) error {
	if len(cfg.Steps) == 0 {
		return camerror.ContractViolation("zoom: steps must be a non-empty sequence")
	}
	steps := make([]float32, len(cfg.Steps))
	copy(steps, cfg.Steps)

	stride := cfg.StepStride
	if stride < 1 {
		stride = 1
	}

	c.steps = steps
	c.minIndex = 0
	c.maxIndex = len(steps) - 1
	c.stepStride = stride
	c.invertWheel = cfg.InvertWheel
	c.smooth = cfg.Smooth
	c.min, c.max = cfg.Min, cfg.Max
	c.cooldown = cfg.Cooldown

	idx := cfg.Index
	if idx < c.minIndex {
		idx = c.minIndex
	}
	if idx > c.maxIndex {
		idx = c.maxIndex
	}
	c.index = idx
	c.target = vecmath.Clamp(c.steps[c.index], c.min, c.max)
	c.current = c.target
	c.cooldownRemaining = 0
	return nil
}

// Reset clears cooldown. If value is finite it also snaps current to
// it (clamped); a non-finite value is a no-op on current.
func (c *Controller) Reset(value ...float32) {
	c.cooldownRemaining = 0
	if len(value) == 0 {
		return
	}
	v := value[0]
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return
	}
	c.current = vecmath.Clamp(v, c.min, c.max)
}

// SetIndex moves to step i (clamped), optionally snapping current to
// the new target immediately instead of smoothing toward it.
func (c *Controller) SetIndex(i int, snap bool) {
	if i < c.minIndex {
		i = c.minIndex
	}
	if i > c.maxIndex {
		i = c.maxIndex
	}
	c.index = i
	c.target = vecmath.Clamp(c.steps[c.index], c.min, c.max)
	if snap {
		c.current = c.target
	}
}

// Update advances cooldown and index from intent, then exponentially
// smooths current toward target. Net intent is
// sign(wheel)+zoomIn-zoomOut; nonzero intent while cooldown is zero
// steps the index (intent>0 => smaller distance => index decreases).
func (c *Controller) Update(dt float32, intent Intent) {
	wheel := intent.Wheel
	if c.invertWheel {
		wheel = -wheel
	}

	net := signF(wheel)
	if intent.ZoomIn {
		net++
	}
	if intent.ZoomOut {
		net--
	}

	if net != 0 && c.cooldownRemaining <= 0 {
		delta := c.stepStride
		if net > 0 {
			delta = -delta
		}
		c.SetIndex(c.index+delta, false)
		c.cooldownRemaining = c.cooldown
	}

	if c.cooldownRemaining > 0 {
		c.cooldownRemaining -= dt
		if c.cooldownRemaining < 0 {
			c.cooldownRemaining = 0
		}
	}

	c.current = vecmath.ExpSmooth(c.current, c.target, c.smooth, dt)
}

// Value returns the current (smoothed) zoom distance.
func (c *Controller) Value() float32 { return c.current }

// TargetValue returns the discrete step target.
func (c *Controller) TargetValue() float32 { return c.target }

// StepIndex returns the active step index.
func (c *Controller) StepIndex() int { return c.index }

// CooldownRemaining exposes remaining cooldown, mostly for tests/telemetry.
func (c *Controller) CooldownRemaining() float32 { return c.cooldownRemaining }

// Snapshot captures state to save/restore across mode switches.
type Snapshot struct {
	Index   int
	Current float32
}

// Save captures the controller's current snapshot.
func (c *Controller) Save() Snapshot {
	return Snapshot{Index: c.index, Current: c.current}
}

// Restore reapplies a previously saved snapshot without touching cooldown.
func (c *Controller) Restore(s Snapshot) {
	c.SetIndex(s.Index, true)
	c.current = vecmath.Clamp(s.Current, c.min, c.max)
}

func signF(f float32) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
