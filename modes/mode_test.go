package modes

import (
	"testing"

	"github.com/pthm-cable/camcore/camctx"
	"github.com/pthm-cable/camcore/vecmath"
)

func TestRegistryStrictRegistration(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(nil); err == nil {
		t.Error("expected error registering nil mode")
	}

	first := NewFirst(vecmath.Vec3{Y: 1.65})
	if err := r.Register(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(first); err == nil {
		t.Error("expected error for duplicate id")
	}
}

func TestRegistryCyclesDeterministically(t *testing.T) {
	r := NewRegistry()
	first := NewFirst(vecmath.Vec3{Y: 1.65})
	third := NewThird(vecmath.Vec3{Y: 1.5}, 6)
	_ = r.Register(first)
	_ = r.Register(third)

	next, err := r.Next("first")
	if err != nil || next.ID() != "third" {
		t.Fatalf("expected third after first, got %v err=%v", next, err)
	}
	next, err = r.Next("third")
	if err != nil || next.ID() != "first" {
		t.Fatalf("expected wraparound to first, got %v err=%v", next, err)
	}
}

func TestFirstModeNoOpTick(t *testing.T) {
	f := NewFirst(vecmath.Vec3{X: 0, Y: 1.65, Z: 0})
	ctx := &camctx.Ctx{BodyPos: vecmath.Vec3{}, Dt: 1.0 / 60}
	f.Update(ctx)

	want := vecmath.Vec3{X: 0, Y: 1.65, Z: 0}
	if ctx.OutPos != want {
		t.Errorf("expected outPos %v, got %v", want, ctx.OutPos)
	}
}

func TestThirdModeOrbitsBehindLook(t *testing.T) {
	third := NewThird(vecmath.Vec3{Y: 1}, 6)
	ctx := &camctx.Ctx{
		BodyPos:     vecmath.Vec3{},
		Look:        camctx.Look{Yaw: 0, Pitch: 0},
		ZoomCurrent: 3,
	}
	third.Update(ctx)

	if ctx.Target != (vecmath.Vec3{Y: 1}) {
		t.Errorf("expected target at pivot, got %v", ctx.Target)
	}
	// Facing world-forward (0,0,-1): the camera should trail along +Z.
	if ctx.OutPos.Z <= 0 {
		t.Errorf("expected camera behind pivot along +Z, got %v", ctx.OutPos)
	}
}

func TestThirdModeMeta(t *testing.T) {
	third := NewThird(vecmath.Vec3{}, 6)
	meta := third.Meta()
	if !meta.SupportsZoom || !meta.HasCollision || meta.NumRays != 6 || !meta.PlayerModelVisible {
		t.Errorf("unexpected meta: %+v", meta)
	}
	if meta.Quality() != camctx.QualityHigh {
		t.Errorf("expected high quality bucket for 6 rays, got %d", meta.Quality())
	}
}
