package collision

// SlideConfig configures wall-slide residual-motion correction.
type SlideConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Strength     float32 `yaml:"strength"` // 0..1
	MinNormalDot float32 `yaml:"min_normal_dot"`
}

// GroundConfig configures the downward ground-clamp probe.
type GroundConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Clearance     float32 `yaml:"clearance"`
	ProbeUp       float32 `yaml:"probe_up"`
	ProbeDown     float32 `yaml:"probe_down"`
	Smooth        float32 `yaml:"smooth"`
	MaxRisePerSec float32 `yaml:"max_rise_per_sec"`
	MinNormalY    float32 `yaml:"min_normal_y"`
}

// Config configures one Solver.
type Config struct {
	Enabled         bool         `yaml:"enabled"`
	Radius          float32      `yaml:"radius"`
	Pad             float32      `yaml:"pad"`
	MinTargetDist   float32      `yaml:"min_target_dist"`
	MinY            float32      `yaml:"min_y"`
	RingScale       float32      `yaml:"ring_scale"`
	VerticalSamples bool         `yaml:"vertical_samples"`
	Predictive      bool         `yaml:"predictive"`
	WallSmooth      float32      `yaml:"wall_smooth"`
	FreeSmooth      float32      `yaml:"free_smooth"`
	MaxPullPerSec   float32      `yaml:"max_pull_per_sec"`
	PopSuppression  float32      `yaml:"pop_suppression"` // 0..1
	Slide           SlideConfig  `yaml:"slide"`
	Ground          GroundConfig `yaml:"ground"`

	// DebugLogEvery rate-limits transient-failure debug logging to once
	// per N frames (0 disables rate limiting, logging every occurrence).
	DebugLogEvery int `yaml:"debug_log_every"`
}
