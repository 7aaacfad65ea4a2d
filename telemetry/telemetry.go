// Package telemetry records one CSV row per camera tick for offline
// inspection: mode, zoom, committed pose, and whether the collision
// solver registered a hit that tick.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/camcore/vecmath"
)

// Row is a single tick's recorded state.
type Row struct {
	Tick       int64   `csv:"tick"`
	Yaw        float32 `csv:"yaw"`
	Pitch      float32 `csv:"pitch"`
	Mode       string  `csv:"mode"`
	Zoom       float32 `csv:"zoom"`
	CommittedX float32 `csv:"committed_x"`
	CommittedY float32 `csv:"committed_y"`
	CommittedZ float32 `csv:"committed_z"`
	HadHit     bool    `csv:"had_hit"`
}

// RowFromPose builds a Row from the orchestrator's committed state.
func RowFromPose(tick int64, yaw, pitch float32, mode string, zoom float32, committed vecmath.Vec3, hadHit bool) Row {
	return Row{
		Tick:       tick,
		Yaw:        yaw,
		Pitch:      pitch,
		Mode:       mode,
		Zoom:       zoom,
		CommittedX: committed.X,
		CommittedY: committed.Y,
		CommittedZ: committed.Z,
		HadHit:     hadHit,
	}
}

// Recorder appends Rows to a CSV file, writing the header once on the
// first write. A nil *Recorder is a valid no-op sink, so a disabled
// recorder can be constructed once and passed around unconditionally.
type Recorder struct {
	file          *os.File
	headerWritten bool
}

// NewRecorder creates (or truncates) the CSV file at path. Pass an
// empty path to get a nil Recorder that silently discards every Write.
func NewRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("telemetry: creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating %s: %w", path, err)
	}
	return &Recorder{file: f}, nil
}

// Write appends row to the CSV file.
func (r *Recorder) Write(row Row) error {
	if r == nil {
		return nil
	}
	records := []Row{row}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.file); err != nil {
			return fmt.Errorf("telemetry: writing row: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.file); err != nil {
		return fmt.Errorf("telemetry: writing row: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	return r.file.Close()
}
