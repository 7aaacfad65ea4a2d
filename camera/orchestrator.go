// Package camera implements the per-tick orchestrator: input edge
// detection, mouse-look integration, mode switching with cross-fade,
// and the full mode -> dynamics -> collision -> commit pipeline. It is
// the single entry point the host drives once per simulation tick;
// every other package in this module is a collaborator it wires
// together.
package camera

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/camcore/camctx"
	"github.com/pthm-cable/camcore/camerror"
	"github.com/pthm-cable/camcore/collision"
	"github.com/pthm-cable/camcore/dynamics"
	"github.com/pthm-cable/camcore/hostiface"
	"github.com/pthm-cable/camcore/modes"
	"github.com/pthm-cable/camcore/vecmath"
	"github.com/pthm-cable/camcore/zoom"
)

// Orchestrator owns every piece of per-tick state: registered modes,
// the active mode's zoom controller, dynamics accumulators, the
// collision solver and its temporal memory, and the mode-switch
// transition. It is constructed once by the host and reused for the
// program's lifetime; Update never allocates on its hot path.
type Orchestrator struct {
	cfg Config
	log *slog.Logger

	registry *modes.Registry
	activeID string

	zoomCtl       *zoom.Controller
	zoomSnapshots map[string]zoom.Snapshot

	dyn  *dynamics.State
	coll *collision.Solver
	cs   collision.State

	trans TransitionState

	switchCooldownRemaining float32

	look camctx.Look
	ctx  camctx.Ctx
}

// New constructs an Orchestrator. reg must be non-empty and contain
// initialModeID; zoom/dynamics/collision sub-controllers are built from
// cfg. logger may be nil (defaults to slog.Default()).
func New(cfg Config, reg *modes.Registry, initialModeID string, logger *slog.Logger) (*Orchestrator, error) {
	if reg == nil || reg.Len() == 0 {
		return nil, camerror.ContractViolation("registry must contain at least one mode")
	}
	if _, ok := reg.Get(initialModeID); !ok {
		return nil, camerror.ContractViolation(fmt.Sprintf("unknown initial mode id %q", initialModeID))
	}
	zc, err := zoom.New(cfg.Zoom)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	o := &Orchestrator{
		cfg:           cfg,
		log:           logger,
		registry:      reg,
		activeID:      initialModeID,
		zoomCtl:       zc,
		zoomSnapshots: make(map[string]zoom.Snapshot, reg.Len()),
		dyn:           dynamics.New(cfg.Dynamics),
		coll:          collision.New(cfg.Collision, logger),
	}
	return o, nil
}

// ActiveMode returns the currently active mode's id.
func (o *Orchestrator) ActiveMode() string { return o.activeID }

// Look returns the current integrated look angles.
func (o *Orchestrator) Look() camctx.Look { return o.look }

// OnJump forwards a takeoff impulse to the dynamics spring.
func (o *Orchestrator) OnJump(strength float32) { o.dyn.OnJump(strength) }

// OnLand forwards a landing impulse to the dynamics spring.
func (o *Orchestrator) OnLand(strength float32) { o.dyn.OnLand(strength) }

// OnAccelerate forwards an accel/brake impulse to the dynamics kick.
func (o *Orchestrator) OnAccelerate(strength float32) { o.dyn.OnAccelerate(strength) }

// Update runs exactly one tick of the pipeline and commits the result
// to cam. dt is clamped to [1/240, 0.05] before use.
func (o *Orchestrator) Update(dt float32, snap camctx.InputSnapshot, cam hostiface.Camera, player hostiface.Player, phys hostiface.Physics) error {
	dt = vecmath.Clamp(dt, 1.0/240, 0.05)

	// ReadSnapshot.
	o.ctx.Cam = cam
	o.ctx.Dt = dt
	o.ctx.Snap = snap

	// IntegrateLook.
	o.integrateLook(snap)
	o.ctx.Look = o.look

	// ResolveBodyPos.
	bodyPos, err := phys.Position(player.BodyID())
	if err != nil {
		return fmt.Errorf("camera: resolving body position: %w", err)
	}
	o.ctx.BodyID = player.BodyID()
	o.ctx.BodyPos = bodyPos

	if o.switchCooldownRemaining > 0 {
		o.switchCooldownRemaining -= dt
		if o.switchCooldownRemaining < 0 {
			o.switchCooldownRemaining = 0
		}
	}

	cycleEdge := snap.Rising(o.cfg.Keymap.CycleMode)
	if cycleEdge && o.switchCooldownRemaining <= 0 {
		return o.beginSwitch(player)
	}

	if o.trans.Active {
		return o.advanceTransition(dt, cam)
	}

	return o.normalTick(dt, cam, player, phys)
}

func (o *Orchestrator) integrateLook(snap camctx.InputSnapshot) {
	dx, dy := snap.Dx, snap.Dy
	if o.cfg.Look.InvertX {
		dx = -dx
	}
	if o.cfg.Look.InvertY {
		dy = -dy
	}
	o.look.Yaw -= dx * o.cfg.Look.Sensitivity
	o.look.Yaw = vecmath.NormalizeAngle(o.look.Yaw)
	o.look.Pitch -= dy * o.cfg.Look.Sensitivity
	o.look.Pitch = vecmath.ClampAngle(o.look.Pitch, o.cfg.Look.PitchLimit)
}

// beginSwitch captures the current pose, advances to the next mode,
// negotiates its capabilities, and starts (or skips) the cross-fade
// transition.
func (o *Orchestrator) beginSwitch(player hostiface.Player) error {
	fromPose := camctx.Pose{Location: o.ctx.Cam.Location(), Yaw: o.look.Yaw, Pitch: o.look.Pitch}

	next, err := o.registry.Next(o.activeID)
	if err != nil {
		return fmt.Errorf("camera: mode switch: %w", err)
	}

	// Save outgoing mode's zoom snapshot, restore (or initialise)
	// incoming mode's; the initial selection and every later mode
	// switch are treated the same way.
	o.zoomSnapshots[o.activeID] = o.zoomCtl.Save()
	if snap, ok := o.zoomSnapshots[next.ID()]; ok {
		o.zoomCtl.Restore(snap)
	} else {
		// First visit to this mode: fall back to the configured default
		// rather than inheriting the outgoing mode's zoom level.
		o.zoomCtl.SetIndex(o.cfg.Zoom.Index, true)
	}

	o.cs.Reset()
	o.dyn.OnModeSwitched()

	o.activeID = next.ID()
	meta := next.Meta()
	model := player.Model()
	if model == nil {
		return camerror.IntegrationViolation("player.Model() returned nil, cannot toggle visibility on mode switch")
	}
	model.SetVisible(meta.PlayerModelVisible)

	// Run the new mode once to obtain its target pose.
	o.ctx.ZoomCurrent = o.zoomCtl.Value()
	next.Update(&o.ctx)
	toPose := camctx.Pose{Location: o.ctx.OutPos, Yaw: o.look.Yaw, Pitch: o.look.Pitch}

	duration := o.cfg.Transition.Duration
	if !o.cfg.Transition.Enabled {
		duration = 0
	}
	o.trans.start(fromPose, toPose, duration)
	o.switchCooldownRemaining = o.cfg.SwitchCooldown

	if !o.trans.Active {
		o.commit(toPose, o.ctx.Cam)
	} else {
		o.commit(fromPose, o.ctx.Cam)
	}
	return nil
}

func (o *Orchestrator) advanceTransition(dt float32, cam hostiface.Camera) error {
	pose, _ := o.trans.advance(dt)
	o.look.Yaw, o.look.Pitch = pose.Yaw, pose.Pitch
	o.commit(pose, cam)
	return nil
}

func (o *Orchestrator) normalTick(dt float32, cam hostiface.Camera, player hostiface.Player, phys hostiface.Physics) error {
	mode, ok := o.registry.Get(o.activeID)
	if !ok {
		return fmt.Errorf("camera: active mode %q vanished from registry", o.activeID)
	}
	meta := mode.Meta()

	if meta.SupportsZoom {
		o.zoomCtl.Update(dt, o.zoomIntent())
	}
	o.ctx.ZoomCurrent = o.zoomCtl.Value()

	mode.Update(&o.ctx)
	outPos, target := o.ctx.OutPos, o.ctx.Target

	forward := vecmath.ForwardFromYawPitch(o.look.Yaw, o.look.Pitch)
	right, up := vecmath.OrthoBasis(forward)
	kin := o.kinematic(player)
	dynOut := o.dyn.Update(dynamics.Input{
		Cam:      cam,
		Dt:       dt,
		Grounded: kin.grounded,
		Running:  kin.running,
		Speed:    kin.speed,
		MouseDx:  o.ctx.Snap.Dx,
		MouseDy:  o.ctx.Snap.Dy,
	})
	outPos = dynamics.Apply(outPos, right, up, forward, dynOut, cam)

	if meta.HasCollision {
		quality := meta.Quality()
		outPos = o.coll.Solve(outPos, target, dt, o.ctx.BodyID, quality, phys, &o.cs)
	}

	pose := camctx.Pose{Location: outPos, Yaw: o.look.Yaw, Pitch: o.look.Pitch}
	o.commit(pose, cam)
	return nil
}

func (o *Orchestrator) zoomIntent() zoom.Intent {
	snap := o.ctx.Snap
	return zoom.Intent{
		Wheel:   snap.Wheel,
		ZoomIn:  snap.Pressed(o.cfg.Keymap.ZoomIn),
		ZoomOut: snap.Pressed(o.cfg.Keymap.ZoomOut),
	}
}

type kinematicReading struct {
	grounded bool
	running  bool
	speed    float32
}

// kinematic feature-detects hostiface.Kinematics on player; a player
// that doesn't implement it reads as "airborne and still" so bob never
// fires but the rest of the tick proceeds normally.
func (o *Orchestrator) kinematic(player hostiface.Player) kinematicReading {
	if kin, ok := player.(hostiface.Kinematics); ok {
		return kinematicReading{grounded: kin.Grounded(), running: kin.Running(), speed: kin.Speed()}
	}
	return kinematicReading{}
}

func (o *Orchestrator) commit(pose camctx.Pose, cam hostiface.Camera) {
	cam.SetLocation(pose.Location)
	cam.SetYawPitch(pose.Yaw, pose.Pitch)
}
