package main

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/camcore/camera"
	"github.com/pthm-cable/camcore/config"
	"github.com/pthm-cable/camcore/debugui"
	"github.com/pthm-cable/camcore/hostiface"
	"github.com/pthm-cable/camcore/telemetry"
	"github.com/pthm-cable/camcore/vecmath"
	"github.com/pthm-cable/camcore/worldadapter"
)

func runWindowed(cfg *config.Config, orch *camera.Orchestrator, world *worldadapter.World, player *worldadapter.Player, bodyID uint32, rec *telemetry.Recorder, logger *slog.Logger, logInterval int) {
	rl.InitWindow(int32(cfg.App.Width), int32(cfg.App.Height), "camdemo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.App.TargetFPS))
	rl.DisableCursor()

	rlCam := &rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 1.65, Z: 0},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	cam := newRaylibCamera(rlCam)

	var tick int64
	grabbed := true

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyEscape) {
			grabbed = !grabbed
			if grabbed {
				rl.DisableCursor()
			} else {
				rl.EnableCursor()
			}
		}

		dt := rl.GetFrameTime()
		snap := pollInput(grabbed)
		hadErr := orch.Update(dt, snap, cam, player, world) != nil

		tick++
		if rec != nil {
			hadHit := lastHitProbe(world, cam.Location())
			_ = rec.Write(telemetry.RowFromPose(tick, orch.Look().Yaw, orch.Look().Pitch, orch.ActiveMode(), 0, cam.Location(), hadHit))
		}
		if logInterval > 0 && tick%int64(logInterval) == 0 {
			logger.Info("camdemo: tick", "tick", tick, "mode", orch.ActiveMode(), "fps", rl.GetFPS())
		}
		if hadErr {
			logger.Error("camdemo: tick failed, continuing")
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.BeginMode3D(*rlCam)
		rl.DrawGrid(50, 1)
		rl.DrawCube(rl.Vector3{X: 4, Y: 1, Z: -2}, 2, 2, 2, rl.Brown)
		rl.DrawCube(rl.Vector3{X: -3, Y: 1.5, Z: 3}, 3, 3, 3, rl.DarkBrown)
		rl.DrawSphere(rl.Vector3{X: 0, Y: 1, Z: -6}, 1.2, rl.Gray)
		rl.EndMode3D()

		debugui.Panel(10, 10, debugui.Snapshot{
			ModeID:          orch.ActiveMode(),
			Yaw:             orch.Look().Yaw,
			Pitch:           orch.Look().Pitch,
			CollisionOn:     true,
			FOV:             rlCam.Fovy,
			LookSensitivity: cfg.Camera.Look.Sensitivity,
		})

		rl.EndDrawing()
	}
}

// lastHitProbe is a cheap approximation of "did the collision solver
// see a hit this tick": a short ray from the committed camera position
// toward the world origin. The orchestrator doesn't expose its
// internal hit flag, so the demo re-derives a rough signal for the
// overlay/telemetry rather than reaching into collision.State.
func lastHitProbe(world *worldadapter.World, from vecmath.Vec3) bool {
	to := vecmath.Add(from, vecmath.Scale(0.3, vecmath.Normalize(vecmath.Sub(vecmath.Zero, from))))
	hit, err := world.Raycast(hostiface.RaycastRequest{From: from, To: to})
	return err == nil && hit != nil
}
