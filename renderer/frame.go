package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frame brackets a window frame: the water is drawn into the surface, which
// is then blitted so overlays can draw on top at window resolution.
type Frame struct {
	surface *Surface
	water   *WaterRenderer
}

// NewFrame creates a frame renderer. The camera comes from the water
// renderer's scene.
func NewFrame(surface *Surface, water *WaterRenderer) *Frame {
	return &Frame{surface: surface, water: water}
}

// BeginFrame starts drawing to the window.
func (f *Frame) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
}

// DrawScene renders the water into the surface and blits it.
func (f *Frame) DrawScene() {
	f.surface.Begin()
	f.water.Draw()
	f.surface.End()
	f.surface.Blit()
}

// EndFrame presents the frame.
func (f *Frame) EndFrame() {
	rl.EndDrawing()
}
