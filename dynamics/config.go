package dynamics

// BobConfig configures the grounded head-bob oscillator.
type BobConfig struct {
	WalkFreq  float32 `yaml:"walk_freq"`
	RunFreq   float32 `yaml:"run_freq"`
	WalkAmpX  float32 `yaml:"walk_amp_x"`
	WalkAmpY  float32 `yaml:"walk_amp_y"`
	RunAmpX   float32 `yaml:"run_amp_x"`
	RunAmpY   float32 `yaml:"run_amp_y"`
	Smooth    float32 `yaml:"smooth"`
}

// SwayConfig configures mouse-look sway.
type SwayConfig struct {
	YawMul   float32 `yaml:"yaw_mul"`
	PitchMul float32 `yaml:"pitch_mul"`
	Smooth   float32 `yaml:"smooth"`
}

// DriftConfig configures the decorrelated handheld-noise oscillators.
type DriftConfig struct {
	Freq   float32 `yaml:"freq"`
	AmpX   float32 `yaml:"amp_x"`
	AmpY   float32 `yaml:"amp_y"`
	Smooth float32 `yaml:"smooth"`
}

// SpringConfig configures a damped harmonic oscillator (jump/land, or kick).
type SpringConfig struct {
	Stiffness float32 `yaml:"stiffness"`
	Damping   float32 `yaml:"damping"`
}

// FovConfig configures FOV modulation while running.
type FovConfig struct {
	Enabled bool    `yaml:"enabled"`
	Base    float32 `yaml:"base"`
	RunAdd  float32 `yaml:"run_add"`
	Smooth  float32 `yaml:"smooth"`
}

// RollConfig configures the optional sway-linked micro-roll.
type RollConfig struct {
	Enabled bool    `yaml:"enabled"`
	Mul     float32 `yaml:"mul"`
	Smooth  float32 `yaml:"smooth"`
}

// Config bundles every dynamics sub-configuration.
type Config struct {
	Bob    BobConfig    `yaml:"bob"`
	Sway   SwayConfig   `yaml:"sway"`
	Drift  DriftConfig  `yaml:"drift"`
	Spring SpringConfig `yaml:"spring"`
	Kick   SpringConfig `yaml:"kick"`
	Fov    FovConfig    `yaml:"fov"`
	Roll   RollConfig   `yaml:"roll"`
}
