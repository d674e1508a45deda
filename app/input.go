package app

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/loop"
	"github.com/pthm-cable/ragingsea/shaders"
	"github.com/pthm-cable/ragingsea/uniforms"
	"github.com/pthm-cable/ragingsea/viewport"
)

const flashDuration = 2 * time.Second

// handleInput runs at the start of every frame.
func (a *App) handleInput(f loop.Frame) {
	a.handleResize()
	a.handleKeys()
	a.handleCameraInput()
	a.pollShaders()
	a.updateHUD(f)
}

// handleResize propagates the window size and DPI scale to the camera and surface.
func (a *App) handleResize() {
	size := viewport.Size{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()}
	dpr := float64(rl.GetWindowScaleDPI().X)
	if a.viewport.Apply(size, dpr) {
		slog.Debug("viewport resized", "width", size.Width, "height", size.Height, "pixel_ratio", a.viewport.PixelRatio())
	}
}

func (a *App) handleKeys() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		a.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.hud.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.store.Reset()
		a.panel.Sync()
		a.hud.Flash("Uniforms reset", flashDuration)
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.copyPreset()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		a.savePreset()
	}
}

// copyPreset puts the current uniform values on the clipboard as YAML.
func (a *App) copyPreset() {
	data, err := a.store.Preset(uniforms.Time).YAML()
	if err != nil {
		slog.Error("encoding preset", "error", err)
		return
	}
	rl.SetClipboardText(string(data))
	a.hud.Flash("Preset copied to clipboard", flashDuration)
}

func (a *App) savePreset() {
	path := a.output.Path("preset.yaml")
	if err := a.store.Preset(uniforms.Time).Save(path); err != nil {
		slog.Error("saving preset", "path", path, "error", err)
		a.hud.Flash("Preset save failed", flashDuration)
		return
	}
	slog.Info("preset saved", "path", path)
	a.hud.Flash("Preset saved to "+path, flashDuration)
}

// handleCameraInput maps mouse gestures to orbit controls. Gestures that
// start on the panel belong to the panel.
func (a *App) handleCameraInput() {
	mouse := rl.GetMousePosition()
	overPanel := a.panelView.Contains(mouse)
	height := float64(a.viewport.Size().Height)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !overPanel {
		a.orbiting = true
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.orbiting = false
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) && !overPanel {
		a.panning = true
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonRight) {
		a.panning = false
	}

	a.panel.Locked = a.orbiting || a.panning

	delta := rl.GetMouseDelta()
	if a.orbiting {
		a.controls.Drag(float64(delta.X), float64(delta.Y), height)
	}
	if a.panning {
		a.controls.Pan(float64(delta.X), float64(delta.Y), height)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !overPanel {
		a.controls.Wheel(float64(wheel))
	}
}

// pollShaders reloads the water shader when files in the shader directory change.
func (a *App) pollShaders() {
	if a.watcher == nil {
		return
	}
	changed, err := a.watcher.Poll()
	if err != nil {
		slog.Warn("shader watcher", "error", err)
	}
	if !changed {
		return
	}

	src, err := shaders.Load(a.opts.ShaderDir)
	if err != nil {
		slog.Error("reading shaders", "error", err)
		return
	}
	if err := a.water.Reload(src); err != nil {
		slog.Error("shader reload failed, keeping previous shader", "error", err)
		a.hud.Flash("Shader error, see log", flashDuration)
		return
	}
	slog.Info("shader reloaded", "dir", a.opts.ShaderDir)
	a.hud.Flash("Shader reloaded", flashDuration)
}
