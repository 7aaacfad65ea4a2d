package zoom

import (
	"math"
	"testing"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	c, err := New(Config{
		Steps:      []float32{2, 4, 8, 16, 32},
		Index:      2,
		Smooth:     18,
		Cooldown:   0.08,
		Min:        2,
		Max:        32,
		StepStride: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestConfigureRejectsEmptySteps(t *testing.T) {
	_, err := New(Config{Steps: nil})
	if err == nil {
		t.Fatal("expected error for empty steps")
	}
}

func TestZoomCycleScenario(t *testing.T) {
	c := newTestController(t)
	dt := float32(1.0 / 60)

	c.Update(dt, Intent{Wheel: 1})
	if c.TargetValue() != 4 {
		t.Fatalf("expected target=4 after wheel+1, got %f", c.TargetValue())
	}
	want := float32(2 + (4-2)*(1-math.Exp(-0.3)))
	if math.Abs(float64(c.Value()-want)) > 1e-3 {
		t.Errorf("expected current≈%f, got %f", want, c.Value())
	}

	// Run for 1s with no further input.
	for i := 0; i < 60; i++ {
		c.Update(dt, Intent{})
	}
	if c.Value() <= 3.95 {
		t.Errorf("expected current>3.95 after 1s settle, got %f", c.Value())
	}
}

func TestCooldownBlocksRepeatedSteps(t *testing.T) {
	c := newTestController(t)
	dt := float32(1.0 / 60)

	c.Update(dt, Intent{Wheel: 1})
	if c.StepIndex() != 1 {
		t.Fatalf("expected index 1, got %d", c.StepIndex())
	}
	// Immediately repeat intent within cooldown: should not move again.
	c.Update(dt, Intent{Wheel: 1})
	if c.StepIndex() != 1 {
		t.Fatalf("expected index unchanged during cooldown, got %d", c.StepIndex())
	}
}

func TestIndexClampsAtBounds(t *testing.T) {
	c := newTestController(t)
	for i := 0; i < 20; i++ {
		c.Update(1, Intent{ZoomOut: true})
	}
	if c.StepIndex() != c.maxIndex {
		t.Errorf("expected clamp at maxIndex=%d, got %d", c.maxIndex, c.StepIndex())
	}
}

func TestUpdateMonotonicApproach(t *testing.T) {
	// current monotonically approaches target; sign of (target-current)
	// never flips mid-approach.
	c := newTestController(t)
	c.Update(1.0/60, Intent{Wheel: -1}) // zoom out, bigger target
	prevDiff := c.TargetValue() - c.Value()
	for i := 0; i < 30; i++ {
		c.Update(1.0/60, Intent{})
		diff := c.TargetValue() - c.Value()
		if diff*prevDiff < 0 {
			t.Fatalf("sign flip detected: prev=%f cur=%f", prevDiff, diff)
		}
		prevDiff = diff
	}
}

func TestResetNonFiniteIsNoop(t *testing.T) {
	c := newTestController(t)
	before := c.Value()
	c.Reset(float32(math.NaN()))
	if c.Value() != before {
		t.Errorf("expected current unchanged, got %f want %f", c.Value(), before)
	}
	if c.CooldownRemaining() != 0 {
		t.Errorf("expected cooldown cleared")
	}
}

func TestSaveRestoreSnapshot(t *testing.T) {
	c := newTestController(t)
	c.Update(1.0/60, Intent{Wheel: 1})
	snap := c.Save()

	other := newTestController(t)
	other.Restore(snap)
	if other.StepIndex() != snap.Index {
		t.Errorf("expected restored index %d, got %d", snap.Index, other.StepIndex())
	}
	if other.Value() != snap.Current {
		t.Errorf("expected restored current %f, got %f", snap.Current, other.Value())
	}
}
