package camera

import (
	"github.com/pthm-cable/camcore/collision"
	"github.com/pthm-cable/camcore/dynamics"
	"github.com/pthm-cable/camcore/zoom"
)

// LookConfig configures mouse-look integration.
type LookConfig struct {
	Sensitivity float32 `yaml:"sensitivity"`
	PitchLimit  float32 `yaml:"pitch_limit"`
	InvertX     bool    `yaml:"invert_x"`
	InvertY     bool    `yaml:"invert_y"`
}

// TransitionConfig configures the mode-switch cross-fade.
type TransitionConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Duration float32 `yaml:"duration"`
}

// Keymap binds the orchestrator's edge-detected actions to the host's
// key-code space, so the core never hardcodes a specific key.
type Keymap struct {
	CycleMode int `yaml:"cycle_mode"`
	ZoomIn    int `yaml:"zoom_in"`
	ZoomOut   int `yaml:"zoom_out"`
}

// Config bundles every per-subsystem configuration the orchestrator
// threads through to its owned controllers.
type Config struct {
	Look           LookConfig       `yaml:"look"`
	Transition     TransitionConfig `yaml:"transition"`
	Keymap         Keymap           `yaml:"keymap"`
	SwitchCooldown float32          `yaml:"switch_cooldown"`
	Zoom           zoom.Config      `yaml:"zoom"`
	Dynamics       dynamics.Config  `yaml:"dynamics"`
	Collision      collision.Config `yaml:"collision"`
}
