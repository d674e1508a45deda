package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/app"
	"github.com/pthm-cable/ragingsea/config"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	presetPath := flag.String("preset", "", "Uniform preset YAML applied on startup")
	shaderDir := flag.String("shader-dir", "", "Directory with water.vs/water.fs overrides, watched for edits")
	outputDir := flag.String("output-dir", "", "Output directory for perf.csv, config snapshot and presets")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	logPerf := flag.Bool("log-perf", false, "Log frame timing stats via slog")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if cfg.Screen.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Raging Sea")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	a, err := app.New(cfg, app.Options{
		PresetPath: *presetPath,
		ShaderDir:  *shaderDir,
		OutputDir:  *outputDir,
		MaxFrames:  *maxFrames,
		LogPerf:    *logPerf,
	})
	if err != nil {
		slog.Error("failed to start", "error", err)
		rl.CloseWindow()
		os.Exit(1)
	}
	defer a.Unload()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting",
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
		"vertices", cfg.Derived.VertexCount,
		"max_frames", *maxFrames,
	)
	if err := a.Run(ctx); errors.Is(err, context.Canceled) {
		slog.Info("interrupted")
	} else if err != nil {
		slog.Error("render loop", "error", err)
	}
}
