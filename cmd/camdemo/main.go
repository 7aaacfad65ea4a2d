// Command camdemo is a small raylib window that drives the camera core
// against an ark-ECS world: a floor plane and a few box obstacles, a
// player body cycling through first/third/free modes, and a debug
// overlay of the orchestrator's live state.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/camcore/camera"
	"github.com/pthm-cable/camcore/config"
	"github.com/pthm-cable/camcore/modes"
	"github.com/pthm-cable/camcore/telemetry"
	"github.com/pthm-cable/camcore/vecmath"
	"github.com/pthm-cable/camcore/worldadapter"
)

var (
	configPath  = flag.String("config", "", "Path to a YAML overlay file (optional)")
	headless    = flag.Bool("headless", false, "Run without opening a window, for smoke-testing the pipeline")
	logInterval = flag.Int("log", 0, "Log perf/tick stats every N ticks (0 = use config default)")
	maxTicks    = flag.Int("max-ticks", 0, "Stop after N ticks (0 = run forever); only meaningful with -headless")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "camdemo: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	rec, err := telemetry.NewRecorder(telemetryPath(cfg))
	if err != nil {
		logger.Error("camdemo: telemetry disabled", "err", err)
	}
	defer rec.Close()

	world, player, bodyID := buildWorld()

	reg := modes.NewRegistry()
	mustRegister(reg, modes.NewFirst(vecmath.Vec3{X: 0, Y: 1.65, Z: 0}))
	mustRegister(reg, modes.NewThird(vecmath.Vec3{X: 0, Y: 1.4, Z: 0}, 6))
	mustRegister(reg, modes.NewFree(modes.FreeKeys{
		Forward: int(rl.KeyW), Back: int(rl.KeyS),
		Left: int(rl.KeyA), Right: int(rl.KeyD),
		Up: int(rl.KeySpace), Down: int(rl.KeyLeftControl),
	}, 8))

	orch, err := camera.New(cfg.Camera, reg, "third", logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "camdemo: %v\n", err)
		os.Exit(1)
	}

	// LogIntervalMS is in milliseconds; convert it to ticks at the target frame rate.
	logInt := cfg.App.LogIntervalMS * cfg.App.TargetFPS / 1000
	if *logInterval > 0 {
		logInt = *logInterval
	}

	if *headless || cfg.App.Headless {
		runHeadless(orch, world, player, bodyID, rec, logger, logInt)
		return
	}

	runWindowed(cfg, orch, world, player, bodyID, rec, logger, logInt)
}

func telemetryPath(cfg *config.Config) string {
	if !cfg.Telemetry.Enabled {
		return ""
	}
	return cfg.Telemetry.OutputPath
}

func mustRegister(reg *modes.Registry, m modes.Mode) {
	if err := reg.Register(m); err != nil {
		fmt.Fprintf(os.Stderr, "camdemo: %v\n", err)
		os.Exit(1)
	}
}

// buildWorld assembles a small worldadapter scene: a wide flat floor
// slab and a scatter of box obstacles, plus the player body.
func buildWorld() (*worldadapter.World, *worldadapter.Player, uint32) {
	world := worldadapter.New()

	world.AddBoxCollider(vecmath.Vec3{X: 0, Y: -0.5, Z: 0}, vecmath.Vec3{X: 50, Y: 0.5, Z: 50})
	world.AddBoxCollider(vecmath.Vec3{X: 4, Y: 1, Z: -2}, vecmath.Vec3{X: 1, Y: 1, Z: 1})
	world.AddBoxCollider(vecmath.Vec3{X: -3, Y: 1.5, Z: 3}, vecmath.Vec3{X: 1.5, Y: 1.5, Z: 1.5})
	world.AddSphereCollider(vecmath.Vec3{X: 0, Y: 1, Z: -6}, 1.2)

	bodyID := world.SpawnBody(vecmath.Vec3{X: 0, Y: 0, Z: 0})
	model := worldadapter.NewModel()
	player := worldadapter.NewPlayer(world, bodyID, model)
	return world, player, bodyID
}

func runHeadless(orch *camera.Orchestrator, world *worldadapter.World, player *worldadapter.Player, bodyID uint32, rec *telemetry.Recorder, logger *slog.Logger, logInterval int) {
	const dt = 1.0 / 60.0
	cam := &stubCamera{}

	var tick int64
	start := time.Now()
	for *maxTicks == 0 || tick < int64(*maxTicks) {
		snap := headlessSnapshot()
		if err := orch.Update(dt, snap, cam, player, world); err != nil {
			logger.Error("camdemo: tick failed", "err", err)
			break
		}
		if rec != nil {
			_ = rec.Write(telemetry.RowFromPose(tick, orch.Look().Yaw, orch.Look().Pitch, orch.ActiveMode(), 0, cam.Location(), false))
		}
		tick++
		if logInterval > 0 && tick%int64(logInterval) == 0 {
			logger.Info("camdemo: progress", "tick", tick, "elapsed", time.Since(start).Round(time.Millisecond))
		}
	}
}
