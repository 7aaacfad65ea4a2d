package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/camcore/vecmath"
)

func TestNewRecorderWithEmptyPathIsNilSafe(t *testing.T) {
	r, err := NewRecorder("")
	if err != nil {
		t.Fatalf("NewRecorder(\"\"): %v", err)
	}
	if r != nil {
		t.Fatalf("expected nil recorder for empty path")
	}
	if err := r.Write(Row{}); err != nil {
		t.Fatalf("Write on nil recorder should no-op: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close on nil recorder should no-op: %v", err)
	}
}

func TestRecorderWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "telemetry.csv")
	r, err := NewRecorder(path)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	row1 := RowFromPose(1, 0.1, -0.2, "first", 8, vecmath.Vec3{X: 1, Y: 2, Z: 3}, false)
	row2 := RowFromPose(2, 0.2, -0.3, "first", 8, vecmath.Vec3{X: 1, Y: 2, Z: 3}, true)
	if err := r.Write(row1); err != nil {
		t.Fatalf("Write row1: %v", err)
	}
	if err := r.Write(row2); err != nil {
		t.Fatalf("Write row2: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 1 header + 2 rows, got %d lines: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "tick") {
		t.Fatalf("expected header row to contain column names, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "true") {
		t.Fatalf("expected second row to record had_hit=true, got %q", lines[2])
	}
}
