package camera

import (
	"github.com/pthm-cable/camcore/camctx"
	"github.com/pthm-cable/camcore/vecmath"
)

// TransitionState drives the smoothstep cross-fade between the pose a
// mode switch leaves behind and the pose the newly active mode
// computes on its first tick.
type TransitionState struct {
	Active   bool
	T        float32
	Duration float32
	From     camctx.Pose
	To       camctx.Pose
}

// start begins a transition from `from` to `to` over duration seconds.
// A non-positive duration collapses the transition (callers should
// treat that as "already done").
func (ts *TransitionState) start(from, to camctx.Pose, duration float32) {
	ts.Active = duration > 0
	ts.T = 0
	ts.Duration = duration
	ts.From = from
	ts.To = to
}

// advance steps the transition by dt, returning the interpolated pose
// and whether the transition just completed this call.
func (ts *TransitionState) advance(dt float32) (camctx.Pose, bool) {
	ts.T += dt
	if ts.T >= ts.Duration {
		ts.Active = false
		return ts.To, true
	}
	a := vecmath.SmoothStep(ts.T / ts.Duration)
	pose := camctx.Pose{
		Location: vecmath.Lerp(ts.From.Location, ts.To.Location, a),
		Yaw:      vecmath.LerpF(ts.From.Yaw, ts.To.Yaw, a),
		Pitch:    vecmath.LerpF(ts.From.Pitch, ts.To.Pitch, a),
	}
	return pose, false
}
