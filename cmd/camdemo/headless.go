package main

import (
	"github.com/pthm-cable/camcore/camctx"
	"github.com/pthm-cable/camcore/vecmath"
)

// stubCamera is a minimal hostiface.Camera for headless smoke-testing:
// no window, no raylib, just a location/yaw/pitch triple the
// orchestrator commits to every tick.
type stubCamera struct {
	loc        vecmath.Vec3
	yaw, pitch float32
}

func (c *stubCamera) SetYawPitch(yaw, pitch float32) { c.yaw, c.pitch = yaw, pitch }
func (c *stubCamera) SetLocation(loc vecmath.Vec3)   { c.loc = loc }
func (c *stubCamera) Location() vecmath.Vec3         { return c.loc }

// headlessSnapshot returns an empty input snapshot: headless runs drive
// the pipeline with no player input, just to exercise it end to end.
func headlessSnapshot() camctx.InputSnapshot {
	return camctx.InputSnapshot{}
}
