package collision

import "github.com/pthm-cable/camcore/vecmath"

// State holds the solver's temporal memory: the last committed
// position/velocity (for smoothing and the predictive lead sample) and
// the last resolved ground height. Owned exclusively by the
// orchestrator and reset on every mode switch.
type State struct {
	HasLast       bool
	LastCommitted vecmath.Vec3
	HasVelocity   bool
	LastVelocity  vecmath.Vec3
	HasGroundY    bool
	GroundY       float32
}

// Reset clears all temporal memory, as done on mode switch to avoid a
// spurious pop between radically different pivots.
func (s *State) Reset() {
	*s = State{}
}
