// Package app wires the water scene, renderer, debug panel and telemetry
// into a window loop.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/camera"
	"github.com/pthm-cable/ragingsea/config"
	"github.com/pthm-cable/ragingsea/loop"
	"github.com/pthm-cable/ragingsea/panel"
	"github.com/pthm-cable/ragingsea/pipeline"
	"github.com/pthm-cable/ragingsea/renderer"
	"github.com/pthm-cable/ragingsea/scene"
	"github.com/pthm-cable/ragingsea/shaders"
	"github.com/pthm-cable/ragingsea/telemetry"
	"github.com/pthm-cable/ragingsea/ui"
	"github.com/pthm-cable/ragingsea/uniforms"
	"github.com/pthm-cable/ragingsea/viewport"
)

// Options holds runtime settings that come from the command line.
type Options struct {
	PresetPath string // preset applied after defaults (empty = none)
	ShaderDir  string // shader override directory, watched for edits (empty = embedded)
	OutputDir  string // perf.csv, config.yaml and saved presets (empty = disabled)
	MaxFrames  int    // stop after N frames (0 = unlimited)
	LogPerf    bool   // log frame stats periodically
}

// App holds the complete demo state.
type App struct {
	cfg  *config.Config
	opts Options

	store    *uniforms.Store
	flags    *scene.Flags
	scene    *scene.Scene
	panel    *panel.Panel
	camera   *camera.Perspective
	controls *camera.OrbitControls
	viewport *viewport.Handler

	surface   *renderer.Surface
	water     *renderer.WaterRenderer
	panelView *ui.PanelView
	hud       *ui.HUD

	pipeline *pipeline.Pipeline
	loop     *loop.Loop

	perf        *telemetry.PerfCollector
	output      *telemetry.OutputManager
	lastPerfLog time.Time

	watcher *shaders.Watcher

	// Pointer gestures that started outside the panel
	orbiting bool
	panning  bool
}

// New builds the app. The raylib window must already be open.
func New(cfg *config.Config, opts Options) (*App, error) {
	store, err := uniforms.NewWaterStore(cfg.Uniforms)
	if err != nil {
		return nil, fmt.Errorf("creating uniform store: %w", err)
	}
	if opts.PresetPath != "" {
		p, err := uniforms.LoadPreset(opts.PresetPath)
		if err != nil {
			return nil, err
		}
		applied, skipped := store.ApplyPreset(p)
		slog.Info("preset loaded", "path", opts.PresetPath, "applied", applied, "skipped", skipped)
	}

	a := &App{
		cfg:   cfg,
		opts:  opts,
		store: store,
		flags: &scene.Flags{
			Wireframe:   cfg.Water.Wireframe,
			Transparent: cfg.Water.Transparent,
			DoubleSided: cfg.Water.DoubleSided,
		},
	}

	cam, controls := camera.NewFromConfig(cfg.Camera, cfg.Derived.Aspect)
	a.scene, err = scene.Assemble(cfg.Water, store, a.flags, scene.CameraRig{Camera: cam, Controls: controls})
	if err != nil {
		return nil, err
	}
	rig := a.scene.Camera()
	a.camera, a.controls = rig.Camera, rig.Controls
	a.panel = panel.NewWaterPanel(store, &a.flags.Wireframe, cfg.Panel)

	src, err := shaders.Load(opts.ShaderDir)
	if err != nil {
		return nil, err
	}
	a.water, err = renderer.NewWaterRenderer(a.scene, src)
	if err != nil {
		return nil, err
	}

	a.surface = renderer.NewSurface(cfg.Screen.Width, cfg.Screen.Height, 1)
	a.viewport = viewport.NewHandler(a.camera, a.surface, cfg.Screen.MaxPixelRatio)
	a.handleResize()

	a.panelView = ui.NewPanelView(a.panel)
	a.hud = ui.NewHUD()

	if err := a.initTelemetry(); err != nil {
		a.Unload()
		return nil, err
	}

	if opts.ShaderDir != "" {
		w, err := shaders.NewWatcher(opts.ShaderDir)
		if err != nil {
			slog.Warn("shader hot reload disabled", "dir", opts.ShaderDir, "error", err)
		} else {
			a.watcher = w
		}
	}

	a.pipeline = pipeline.New(store, a.controls, renderer.NewFrame(a.surface, a.water))
	a.pipeline.SetInput(a.handleInput)
	a.pipeline.AddOverlay(a.hud)
	a.pipeline.AddOverlay(a.panelView)
	a.pipeline.SetPerf(a.perf)

	a.loop = loop.New(loop.NewClock(), a.step)
	a.loop.SetCloseCheck(a.shouldClose)

	slog.Info("app ready",
		"uniforms", store.Len(),
		"wireframe", a.flags.Wireframe,
		"shader_dir", opts.ShaderDir,
		"output_dir", a.output.Dir(),
	)
	return a, nil
}

// Run drives frames until the window closes, MaxFrames is reached, or ctx ends.
func (a *App) Run(ctx context.Context) error {
	err := a.loop.Run(ctx)
	slog.Info("loop stopped", "frames", a.loop.Frames(), "elapsed", a.loop.Last().Elapsed)
	return err
}

// Stop ends the loop after the current frame.
func (a *App) Stop() {
	a.loop.Stop()
}

func (a *App) step(f loop.Frame) {
	a.pipeline.Step(f)
	a.afterFrame(f)
}

func (a *App) shouldClose() bool {
	if rl.WindowShouldClose() {
		return true
	}
	return a.opts.MaxFrames > 0 && a.loop.Frames() >= uint64(a.opts.MaxFrames)
}

// Unload frees GPU resources and closes output files.
func (a *App) Unload() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			slog.Warn("closing shader watcher", "error", err)
		}
	}
	if a.water != nil {
		a.water.Unload()
	}
	if a.surface != nil {
		a.surface.Unload()
	}
	a.closeTelemetry()
}
