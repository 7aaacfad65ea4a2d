package debugui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Snapshot is the subset of orchestrator state the panel reads each
// frame. The host fills it in from the camera.Orchestrator and
// collision.State it owns; debugui never imports those packages itself
// so it stays reusable for any hostiface.Camera-driven rig.
type Snapshot struct {
	ModeID          string
	Yaw, Pitch      float32
	ZoomCurrent     float32
	ZoomTarget      float32
	CollisionOn     bool
	HadHit          bool
	FOV             float32
	LookSensitivity float32
}

// Edits reports values from the panel's interactive controls this
// frame. LookSensitivity always holds the slider's value;
// LookSensitivityChanged reports whether the user moved it.
type Edits struct {
	LookSensitivity        float32
	LookSensitivityChanged bool
}

// Panel draws a fixed top-left readout of s and returns any edits the
// user made via its sliders.
func Panel(x, y int32, s Snapshot) Edits {
	width, height := int32(280), int32(210)
	rl.DrawRectangle(x, y, width, height, colorPanelBg)
	rl.DrawRectangleLines(x, y, width, height, colorTextDim)

	cx, cy := x+10, y+10
	cy += drawLabel(cx, cy, "mode", s.ModeID)
	cy += drawAngle(cx, cy, "yaw", s.Yaw)
	cy += drawAngle(cx, cy, "pitch", s.Pitch)
	cy += drawLabel(cx, cy, "zoom", fmtZoom(s.ZoomCurrent, s.ZoomTarget))
	cy += drawBool(cx, cy, "collision", s.CollisionOn)
	cy += drawBool(cx, cy, "hit this tick", s.HadHit)
	cy += drawLabel(cx, cy, "fov", fmtFloat(s.FOV))

	cy += 6
	newSens, rowH := drawSlider(cx, cy, 90, "sensitivity", s.LookSensitivity, 0.0005, 0.01)
	cy += rowH

	return Edits{
		LookSensitivity:        newSens,
		LookSensitivityChanged: newSens != s.LookSensitivity,
	}
}

func fmtZoom(current, target float32) string {
	if current == target {
		return fmtFloat(current)
	}
	return fmtFloat(current) + " -> " + fmtFloat(target)
}

func fmtFloat(f float32) string {
	return fmt.Sprintf("%.2f", f)
}
