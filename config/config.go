// Package config loads the camera core's tunables from YAML: an
// embedded default set, optionally overlaid by a user-supplied file.
// Unrecognised keys in the overlay are ignored (partial-overlay
// semantics); only fields present in the file replace a default.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/camcore/camera"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// AppConfig holds the demo binary's own knobs: window size, headless
// mode, and log cadence. Not consumed by the core itself.
type AppConfig struct {
	Width         int  `yaml:"width"`
	Height        int  `yaml:"height"`
	TargetFPS     int  `yaml:"target_fps"`
	Headless      bool `yaml:"headless"`
	LogIntervalMS int  `yaml:"log_interval_ms"`
}

// TelemetryConfig configures the optional per-tick CSV recorder.
type TelemetryConfig struct {
	Enabled    bool   `yaml:"enabled"`
	OutputPath string `yaml:"output_path"`
}

// Config is the full, top-level configuration document: the
// orchestrator's own sections (look/zoom/collision/dynamics/
// transition) embedded verbatim, plus the ambient app/telemetry
// sections the demo binary needs.
type Config struct {
	Camera    camera.Config   `yaml:",inline"`
	App       AppConfig       `yaml:"app"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// Load reads configuration from an embedded default set, optionally
// overlaid by the YAML file at path (pass "" to use only defaults).
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading overlay file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing overlay file: %w", err)
		}
	}

	return cfg, nil
}

// global holds the process-wide configuration for hosts that prefer a
// single loaded-once instance over threading a *Config through every
// constructor. cmd/camdemo does not use it; it calls Load directly.
var global *Config

// Init loads configuration from path (or embedded defaults if path is
// empty) and stores it as the package-global instance. Must be called
// before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error, for use in program startup
// paths that can't meaningfully continue without configuration.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}
