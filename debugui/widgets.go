// Package debugui draws a live readout of the camera core's per-tick
// state over the game view: active mode, zoom target vs. current,
// whether the collision solver registered a hit, and FOV. One draw
// function per value kind.
package debugui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorText    = rl.Color{R: 220, G: 220, B: 220, A: 255}
	colorTextDim = rl.Color{R: 150, G: 150, B: 150, A: 255}
	colorBoolOn  = rl.Color{R: 100, G: 200, B: 100, A: 255}
	colorBoolOff = rl.Color{R: 180, G: 80, B: 80, A: 255}
	colorPanelBg = rl.Color{R: 20, G: 20, B: 24, A: 180}
)

// drawLabel renders a "name: value" line and returns the row height.
func drawLabel(x, y int32, name, value string) int32 {
	rl.DrawText(fmt.Sprintf("%s: %s", name, value), x, y, 16, colorText)
	return 20
}

// drawBool renders an ON/OFF indicator.
func drawBool(x, y int32, name string, value bool) int32 {
	rl.DrawText(name, x, y, 14, colorTextDim)
	indicatorX := x + 110
	color, text := colorBoolOff, "NO"
	if value {
		color, text = colorBoolOn, "YES"
	}
	rl.DrawRectangle(indicatorX, y, 14, 14, color)
	rl.DrawText(text, indicatorX+20, y, 14, color)
	return 18
}

// drawAngle renders a compass-style needle for a radian value.
func drawAngle(x, y int32, name string, radians float32) int32 {
	size := int32(36)
	centerX := x + 110 + size/2
	centerY := y + size/2
	rl.DrawText(name, x, y+size/2-7, 14, colorTextDim)
	rl.DrawCircleLines(centerX, centerY, float32(size/2), colorTextDim)
	needleLen := float32(size/2 - 4)
	endX := float32(centerX) + needleLen*float32(math.Cos(float64(radians)))
	endY := float32(centerY) + needleLen*float32(math.Sin(float64(radians)))
	rl.DrawLineEx(rl.Vector2{X: float32(centerX), Y: float32(centerY)}, rl.Vector2{X: endX, Y: endY}, 2, colorBoolOn)
	degrees := radians * 180 / math.Pi
	rl.DrawText(fmt.Sprintf("%.0f deg", degrees), x+110+size+6, y+size/2-7, 14, colorTextDim)
	return size + 4
}

// drawSlider renders a slider that reports drags, used for the panel's
// look-sensitivity knob. Returns the (possibly edited) value and the
// row height.
func drawSlider(x, y, width int32, name string, value, min, max float32) (float32, int32) {
	rl.DrawText(name, x, y, 14, colorTextDim)
	edited := gui.SliderBar(
		rl.Rectangle{X: float32(x + 120), Y: float32(y), Width: float32(width), Height: 18},
		fmt.Sprintf("%.2f", min), fmt.Sprintf("%.2f", max),
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf("%.3f", value), x+120+width+8, y+1, 14, colorText)
	return edited, 24
}
