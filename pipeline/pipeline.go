// Package pipeline runs the work of one rendered frame in a fixed order:
// input, time uniform, camera controls, scene draw, overlay.
package pipeline

import (
	"github.com/pthm-cable/ragingsea/loop"
	"github.com/pthm-cable/ragingsea/telemetry"
	"github.com/pthm-cable/ragingsea/uniforms"
)

// Controls is updated once per frame before drawing.
type Controls interface {
	Update() bool
}

// Renderer draws the scene. BeginFrame and EndFrame bracket everything
// drawn in a frame, overlays included.
type Renderer interface {
	BeginFrame()
	DrawScene()
	EndFrame()
}

// Overlay draws on top of the scene.
type Overlay interface {
	Draw()
}

// Pipeline is the loop step for the water scene.
type Pipeline struct {
	store    *uniforms.Store
	controls Controls
	renderer Renderer
	overlays []Overlay
	input    func(loop.Frame)
	perf     *telemetry.PerfCollector

	moved bool
}

// New creates a pipeline. controls may be nil.
func New(store *uniforms.Store, controls Controls, renderer Renderer) *Pipeline {
	return &Pipeline{store: store, controls: controls, renderer: renderer}
}

// SetInput sets a hook run first in every frame.
func (p *Pipeline) SetInput(fn func(loop.Frame)) {
	p.input = fn
}

// AddOverlay appends an overlay, drawn in insertion order after the scene.
func (p *Pipeline) AddOverlay(o Overlay) {
	p.overlays = append(p.overlays, o)
}

// SetPerf enables phase timing.
func (p *Pipeline) SetPerf(pc *telemetry.PerfCollector) {
	p.perf = pc
}

// CameraMoved reports whether the controls moved the camera in the last frame.
func (p *Pipeline) CameraMoved() bool {
	return p.moved
}

// Step runs one frame. It matches loop.StepFunc.
func (p *Pipeline) Step(f loop.Frame) {
	if p.perf != nil {
		p.perf.StartFrame()
	}

	p.phase(telemetry.PhaseInput)
	if p.input != nil {
		p.input(f)
	}

	p.phase(telemetry.PhaseUniforms)
	p.store.SetScalar(uniforms.Time, float32(f.Elapsed))

	p.phase(telemetry.PhaseControls)
	p.moved = false
	if p.controls != nil {
		p.moved = p.controls.Update()
	}

	p.renderer.BeginFrame()
	p.phase(telemetry.PhaseRender)
	p.renderer.DrawScene()

	p.phase(telemetry.PhasePanel)
	for _, o := range p.overlays {
		o.Draw()
	}
	p.renderer.EndFrame()

	if p.perf != nil {
		p.perf.EndFrame()
	}
}

func (p *Pipeline) phase(name string) {
	if p.perf != nil {
		p.perf.StartPhase(name)
	}
}
