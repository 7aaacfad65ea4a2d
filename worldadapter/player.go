package worldadapter

import "github.com/pthm-cable/camcore/hostiface"

// Model is the player's visible mesh handle. The adapter itself never
// renders; it only tracks the visibility flag the camera core toggles
// on mode switch so a host renderer can read it back.
type Model struct {
	visible bool
}

// NewModel returns a Model starting visible.
func NewModel() *Model { return &Model{visible: true} }

// SetVisible implements hostiface.PlayerModel.
func (m *Model) SetVisible(v bool) { m.visible = v }

// Visible reports the last value SetVisible was called with.
func (m *Model) Visible() bool { return m.visible }

// Player binds a body in a World to a Model, implementing
// hostiface.Player and hostiface.Kinematics.
type Player struct {
	world *World
	body  hostiface.BodyID
	model *Model
}

// NewPlayer wires body (already spawned via World.SpawnBody) to model.
func NewPlayer(world *World, body hostiface.BodyID, model *Model) *Player {
	return &Player{world: world, body: body, model: model}
}

// BodyID implements hostiface.Player.
func (p *Player) BodyID() hostiface.BodyID { return p.body }

// Model implements hostiface.Player.
func (p *Player) Model() hostiface.PlayerModel { return p.model }

// Grounded implements hostiface.Kinematics.
func (p *Player) Grounded() bool { return p.kinematic().Grounded }

// Running implements hostiface.Kinematics.
func (p *Player) Running() bool { return p.kinematic().Running }

// Speed implements hostiface.Kinematics.
func (p *Player) Speed() float32 { return p.kinematic().Speed }

func (p *Player) kinematic() Kinematic {
	e, ok := p.world.bodies[p.body]
	if !ok {
		return Kinematic{}
	}
	_, _, kin := p.world.bodyMap.Get(e)
	return *kin
}
