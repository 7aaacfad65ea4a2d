package camera

import (
	"math"
	"testing"

	"github.com/pthm-cable/camcore/camctx"
	"github.com/pthm-cable/camcore/collision"
	"github.com/pthm-cable/camcore/dynamics"
	"github.com/pthm-cable/camcore/hostiface"
	"github.com/pthm-cable/camcore/modes"
	"github.com/pthm-cable/camcore/vecmath"
	"github.com/pthm-cable/camcore/zoom"
)

type fakeCamera struct {
	loc        vecmath.Vec3
	yaw, pitch float32
}

func (c *fakeCamera) SetYawPitch(yaw, pitch float32) { c.yaw, c.pitch = yaw, pitch }
func (c *fakeCamera) SetLocation(loc vecmath.Vec3)   { c.loc = loc }
func (c *fakeCamera) Location() vecmath.Vec3         { return c.loc }

type fakeModel struct{ visible bool }

func (m *fakeModel) SetVisible(v bool) { m.visible = v }

type fakePlayer struct {
	body  hostiface.BodyID
	model *fakeModel
}

func (p *fakePlayer) BodyID() hostiface.BodyID     { return p.body }
func (p *fakePlayer) Model() hostiface.PlayerModel { return p.model }

type fakePhysics struct {
	bodyPos vecmath.Vec3
}

func (p *fakePhysics) Position(hostiface.BodyID) (vecmath.Vec3, error) { return p.bodyPos, nil }
func (p *fakePhysics) Raycast(hostiface.RaycastRequest) (*hostiface.Hit, error) {
	return nil, nil
}

// moveTo is a minimal test-only mode that always proposes a fixed
// desired position, with no zoom/collision participation.
type moveTo struct {
	id  string
	pos vecmath.Vec3
}

func (m *moveTo) ID() string              { return m.id }
func (m *moveTo) Meta() camctx.ModeMeta    { return camctx.ModeMeta{} }
func (m *moveTo) Update(ctx *camctx.Ctx) {
	ctx.OutPos = m.pos
	ctx.Target = m.pos
}

func baseConfig() Config {
	return Config{
		Look: LookConfig{
			Sensitivity: 0.002,
			PitchLimit:  float32(math.Pi) * 0.49,
		},
		Transition: TransitionConfig{Enabled: true, Duration: 0.22},
		Keymap:     Keymap{CycleMode: 86, ZoomIn: 1, ZoomOut: 2},
		SwitchCooldown: 0.18,
		Zoom: zoom.Config{
			Steps:  []float32{2, 4, 8, 16, 32},
			Index:  2,
			Smooth: 18,
			Min:    2,
			Max:    32,
		},
		Dynamics:  dynamics.Config{},
		Collision: collision.Config{},
	}
}

func TestNoOpFirstModeTick(t *testing.T) {
	reg := modes.NewRegistry()
	if err := reg.Register(modes.NewFirst(vecmath.Vec3{X: 0, Y: 1.65, Z: 0})); err != nil {
		t.Fatalf("register: %v", err)
	}
	orch, err := New(baseConfig(), reg, "first", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cam := &fakeCamera{}
	player := &fakePlayer{body: 1, model: &fakeModel{}}
	phys := &fakePhysics{bodyPos: vecmath.Vec3{}}

	if err := orch.Update(1.0/60, camctx.InputSnapshot{}, cam, player, phys); err != nil {
		t.Fatalf("Update: %v", err)
	}

	want := vecmath.Vec3{X: 0, Y: 1.65, Z: 0}
	if vecmath.Length(vecmath.Sub(cam.loc, want)) > 1e-4 {
		t.Fatalf("expected committed %+v, got %+v", want, cam.loc)
	}
	if cam.yaw != 0 || cam.pitch != 0 {
		t.Fatalf("expected yaw=pitch=0, got yaw=%v pitch=%v", cam.yaw, cam.pitch)
	}
}

func TestMouseLookPitchClampsAtLimit(t *testing.T) {
	reg := modes.NewRegistry()
	reg.Register(modes.NewFirst(vecmath.Vec3{X: 0, Y: 1.65, Z: 0}))
	orch, err := New(baseConfig(), reg, "first", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cam := &fakeCamera{}
	player := &fakePlayer{body: 1, model: &fakeModel{}}
	phys := &fakePhysics{}

	snap := camctx.InputSnapshot{Dy: 10000}
	if err := orch.Update(1.0/60, snap, cam, player, phys); err != nil {
		t.Fatalf("Update: %v", err)
	}

	wantPitch := -float32(math.Pi) * 0.49
	if math.Abs(float64(cam.pitch-wantPitch)) > 1e-4 {
		t.Fatalf("expected pitch clamped to %v, got %v", wantPitch, cam.pitch)
	}
}

func TestModeSwitchTransitionInterpolates(t *testing.T) {
	reg := modes.NewRegistry()
	reg.Register(modes.NewFirst(vecmath.Vec3{X: 0, Y: 1.65, Z: 0}))
	reg.Register(&moveTo{id: "moveto", pos: vecmath.Vec3{X: 0, Y: 1.65, Z: -8}})

	orch, err := New(baseConfig(), reg, "first", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cam := &fakeCamera{loc: vecmath.Vec3{X: 0, Y: 1.65, Z: 0}}
	player := &fakePlayer{body: 1, model: &fakeModel{}}
	phys := &fakePhysics{}

	dt := float32(0.01)
	triggerSnap := camctx.InputSnapshot{JustPressed: map[int]bool{86: true}}
	if err := orch.Update(dt, triggerSnap, cam, player, phys); err != nil {
		t.Fatalf("switch tick: %v", err)
	}
	if !orch.trans.Active {
		t.Fatalf("expected transition to start active")
	}

	idle := camctx.InputSnapshot{}
	for i := 0; i < 11; i++ {
		if err := orch.Update(dt, idle, cam, player, phys); err != nil {
			t.Fatalf("advance tick %d: %v", i, err)
		}
	}
	// t≈0.11s of advancing, duration 0.22s: smoothstep(0.5)=0.5, so
	// committed.z should be close to halfway between 0 and -8.
	if math.Abs(float64(cam.loc.Z-(-4))) > 0.2 {
		t.Fatalf("expected committed.z near -4 at midpoint, got %v", cam.loc.Z)
	}
	if !orch.trans.Active {
		t.Fatalf("expected transition still active at midpoint")
	}

	for i := 0; i < 11; i++ {
		if err := orch.Update(dt, idle, cam, player, phys); err != nil {
			t.Fatalf("finish tick %d: %v", i, err)
		}
	}
	if orch.trans.Active {
		t.Fatalf("expected transition to have completed")
	}
	want := vecmath.Vec3{X: 0, Y: 1.65, Z: -8}
	if vecmath.Length(vecmath.Sub(cam.loc, want)) > 1e-3 {
		t.Fatalf("expected exact toPose %+v at completion, got %+v", want, cam.loc)
	}
}

func TestHasCollisionFalseBypassesSolver(t *testing.T) {
	reg := modes.NewRegistry()
	reg.Register(modes.NewFirst(vecmath.Vec3{X: 0, Y: 1.65, Z: 0}))
	orch, err := New(baseConfig(), reg, "first", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cam := &fakeCamera{}
	player := &fakePlayer{body: 1, model: &fakeModel{}}
	phys := &fakePhysics{bodyPos: vecmath.Vec3{X: 1, Y: 2, Z: 3}}

	if err := orch.Update(1.0/60, camctx.InputSnapshot{}, cam, player, phys); err != nil {
		t.Fatalf("Update: %v", err)
	}
	want := vecmath.Vec3{X: 1, Y: 2 + 1.65, Z: 3}
	if vecmath.Length(vecmath.Sub(cam.loc, want)) > 1e-4 {
		t.Fatalf("expected committed to equal mode outPos untouched by collision, got %+v want %+v", cam.loc, want)
	}
}
