// Shader debug tool - renders one frame of the water scene to a PNG file.
//
// Usage: go run ./cmd/shaderdebug -out water.png -time 2.5 -solid
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/camera"
	"github.com/pthm-cable/ragingsea/config"
	"github.com/pthm-cable/ragingsea/renderer"
	"github.com/pthm-cable/ragingsea/scene"
	"github.com/pthm-cable/ragingsea/shaders"
	"github.com/pthm-cable/ragingsea/uniforms"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	presetPath := flag.String("preset", "", "Uniform preset YAML")
	shaderDir := flag.String("shader-dir", "", "Directory with water.vs/water.fs overrides")
	outPath := flag.String("out", "water.png", "Output PNG path")
	width := flag.Int("width", 1280, "Render width")
	height := flag.Int("height", 720, "Render height")
	elapsed := flag.Float64("time", 0, "Value of uTime for the frame")
	solid := flag.Bool("solid", false, "Render filled triangles instead of wireframe")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := run(*configPath, *presetPath, *shaderDir, *outPath, *width, *height, float32(*elapsed), *solid); err != nil {
		slog.Error("shader debug failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, presetPath, shaderDir, outPath string, width, height int, elapsed float32, solid bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, err := uniforms.NewWaterStore(cfg.Uniforms)
	if err != nil {
		return err
	}
	if presetPath != "" {
		p, err := uniforms.LoadPreset(presetPath)
		if err != nil {
			return err
		}
		store.ApplyPreset(p)
	}
	store.SetScalar(uniforms.Time, elapsed)

	flags := &scene.Flags{
		Wireframe:   cfg.Water.Wireframe && !solid,
		Transparent: cfg.Water.Transparent,
		DoubleSided: cfg.Water.DoubleSided,
	}
	cam, controls := camera.NewFromConfig(cfg.Camera, float64(width)/float64(height))
	s, err := scene.Assemble(cfg.Water, store, flags, scene.CameraRig{Camera: cam, Controls: controls})
	if err != nil {
		return err
	}

	src, err := shaders.Load(shaderDir)
	if err != nil {
		return err
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(width), int32(height), "Shader Debug")
	defer rl.CloseWindow()

	water, err := renderer.NewWaterRenderer(s, src)
	if err != nil {
		return err
	}
	defer water.Unload()

	surface := renderer.NewSurface(width, height, 1)
	defer surface.Unload()

	surface.Begin()
	water.Draw()
	surface.End()

	if err := surface.Capture(outPath); err != nil {
		return err
	}
	fmt.Printf("Water rendered to: %s (%dx%d, uTime=%.2f)\n", outPath, width, height, elapsed)
	return nil
}
