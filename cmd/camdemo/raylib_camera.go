package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/camcore/vecmath"
)

// raylibCamera adapts an *rl.Camera3D to hostiface.Camera (and its
// optional hostiface.FovCamera extension). Yaw/pitch are tracked
// locally since rl.Camera3D only stores Target, not an angle pair.
type raylibCamera struct {
	cam        *rl.Camera3D
	yaw, pitch float32
}

func newRaylibCamera(cam *rl.Camera3D) *raylibCamera {
	return &raylibCamera{cam: cam}
}

func (c *raylibCamera) SetYawPitch(yaw, pitch float32) {
	c.yaw, c.pitch = yaw, pitch
	c.retarget()
}

func (c *raylibCamera) SetLocation(loc vecmath.Vec3) {
	c.cam.Position = rl.Vector3{X: loc.X, Y: loc.Y, Z: loc.Z}
	c.retarget()
}

func (c *raylibCamera) Location() vecmath.Vec3 {
	return vecmath.Vec3{X: c.cam.Position.X, Y: c.cam.Position.Y, Z: c.cam.Position.Z}
}

func (c *raylibCamera) SetFov(f float32) { c.cam.Fovy = f }

func (c *raylibCamera) Fov() float32 { return c.cam.Fovy }

func (c *raylibCamera) retarget() {
	pos := vecmath.Vec3{X: c.cam.Position.X, Y: c.cam.Position.Y, Z: c.cam.Position.Z}
	forward := vecmath.ForwardFromYawPitch(c.yaw, c.pitch)
	target := vecmath.Add(pos, forward)
	c.cam.Target = rl.Vector3{X: target.X, Y: target.Y, Z: target.Z}
}
