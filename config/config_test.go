package config

import "testing"

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if len(cfg.Camera.Zoom.Steps) == 0 {
		t.Fatalf("expected zoom steps to be populated from embedded defaults")
	}
	if cfg.Camera.Look.Sensitivity <= 0 {
		t.Fatalf("expected positive look sensitivity, got %v", cfg.Camera.Look.Sensitivity)
	}
	if !cfg.Camera.Collision.Enabled {
		t.Fatalf("expected collision enabled by default")
	}
	if cfg.App.Width <= 0 || cfg.App.Height <= 0 {
		t.Fatalf("expected app window dimensions to be populated, got %+v", cfg.App)
	}
}

func TestLoadMissingOverlayFileErrors(t *testing.T) {
	if _, err := Load("/nonexistent/overlay.yaml"); err == nil {
		t.Fatalf("expected error for missing overlay file")
	}
}
