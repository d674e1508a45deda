package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/telemetry"
)

// HUDData holds everything the HUD shows for one frame.
type HUDData struct {
	FPS            int32
	Perf           telemetry.PerfStats
	Elapsed        float64
	CameraDistance float64
	Vertices       int
	Wireframe      bool
	ScreenHeight   int32
}

// HUD renders the stats overlay in the top-left corner and the key legend
// at the bottom, plus a short-lived status message.
type HUD struct {
	renderer *Renderer
	data     HUDData
	visible  bool

	message      string
	messageUntil time.Time
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer(), visible: true}
}

// Toggle switches HUD visibility.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// SetData replaces the values drawn next frame.
func (h *HUD) SetData(data HUDData) {
	h.data = data
}

// Flash shows message for d.
func (h *HUD) Flash(message string, d time.Duration) {
	h.message = message
	h.messageUntil = time.Now().Add(d)
}

// Draw renders the HUD.
func (h *HUD) Draw() {
	t := h.renderer.Theme
	data := h.data

	if h.visible {
		x, y := int32(10), int32(10)
		rl.DrawText("Raging Sea", x, y, 20, rl.White)
		y += 26
		y = h.renderer.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", data.FPS))
		if data.Perf.Samples > 0 {
			y = h.renderer.DrawLabelValue(x, y, "Frame", fmt.Sprintf("%s (p95 %s)",
				data.Perf.AvgFrame.Round(time.Microsecond), data.Perf.P95Frame.Round(time.Microsecond)))
		}
		y = h.renderer.DrawLabelValue(x, y, "Time", fmt.Sprintf("%.1fs", data.Elapsed))
		y = h.renderer.DrawLabelValue(x, y, "Distance", fmt.Sprintf("%.2f", data.CameraDistance))
		y = h.renderer.DrawLabelValue(x, y, "Vertices", fmt.Sprintf("%d", data.Vertices))
		mode := "solid"
		if data.Wireframe {
			mode = "wireframe"
		}
		h.renderer.DrawLabelValue(x, y, "Mode", mode)
	}

	rl.DrawText("Drag: orbit | Right drag: pan | Wheel: zoom | F1: panel | H: HUD | C: copy preset | S: save preset | R: reset | F11: fullscreen",
		10, data.ScreenHeight-20, t.FontSize, t.HintColor)

	if h.message != "" && time.Now().Before(h.messageUntil) {
		rl.DrawText(h.message, 10, data.ScreenHeight-40, t.TitleFontSize, t.MessageColor)
	}
}
