package app

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/loop"
	"github.com/pthm-cable/ragingsea/telemetry"
	"github.com/pthm-cable/ragingsea/ui"
)

func (a *App) initTelemetry() error {
	a.perf = telemetry.NewPerfCollector(a.cfg.Telemetry.PerfWindow)

	out, err := telemetry.NewOutputManager(a.opts.OutputDir)
	if err != nil {
		return err
	}
	a.output = out
	if err := a.output.WriteConfig(a.cfg); err != nil {
		return err
	}
	return nil
}

// afterFrame writes a perf.csv row every full window and logs at the
// configured interval.
func (a *App) afterFrame(f loop.Frame) {
	frames := a.perf.Frames()
	window := int64(a.cfg.Telemetry.PerfWindow)
	if a.output != nil && window > 0 && frames%window == 0 {
		if err := a.output.WritePerf(a.perf.Stats(), frames); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	if !a.opts.LogPerf {
		return
	}
	now := time.Now()
	interval := time.Duration(a.cfg.Telemetry.LogIntervalSec * float64(time.Second))
	if a.lastPerfLog.IsZero() {
		a.lastPerfLog = now
		return
	}
	if now.Sub(a.lastPerfLog) >= interval {
		a.lastPerfLog = now
		slog.Info("perf", "frame", f.Index, "elapsed", f.Elapsed, "stats", a.perf.Stats())
	}
}

func (a *App) updateHUD(f loop.Frame) {
	a.hud.SetData(ui.HUDData{
		FPS:            rl.GetFPS(),
		Perf:           a.perf.Stats(),
		Elapsed:        f.Elapsed,
		CameraDistance: a.camera.Distance(),
		Vertices:       a.scene.VertexCount(),
		Wireframe:      a.flags.Wireframe,
		ScreenHeight:   int32(rl.GetScreenHeight()),
	})
}

func (a *App) closeTelemetry() {
	if err := a.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}
