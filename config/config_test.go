package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Water.SegmentsW != 700 || cfg.Water.SegmentsH != 700 {
		t.Errorf("expected 700x700 segments, got %dx%d", cfg.Water.SegmentsW, cfg.Water.SegmentsH)
	}
	if cfg.Water.Width != 8 || cfg.Water.Height != 8 {
		t.Errorf("expected 8x8 plane, got %gx%g", cfg.Water.Width, cfg.Water.Height)
	}
	if cfg.Panel.Width != 340 || !cfg.Panel.Collapsed {
		t.Errorf("expected collapsed 340px panel, got width=%d collapsed=%v", cfg.Panel.Width, cfg.Panel.Collapsed)
	}
	if cfg.Camera.FOV != 75 || cfg.Camera.Position != [3]float64{1, 0.6, 1} {
		t.Errorf("unexpected camera defaults: fov=%g pos=%v", cfg.Camera.FOV, cfg.Camera.Position)
	}
	if cfg.Uniforms.DepthColor != "#6D59CF" || cfg.Uniforms.SurfaceColor != "#D92FA2" {
		t.Errorf("unexpected colors: %s %s", cfg.Uniforms.DepthColor, cfg.Uniforms.SurfaceColor)
	}
	if cfg.Screen.MaxPixelRatio != 2 {
		t.Errorf("expected max pixel ratio 2, got %g", cfg.Screen.MaxPixelRatio)
	}
	if cfg.Derived.VertexCount != 701*701 {
		t.Errorf("expected %d vertices, got %d", 701*701, cfg.Derived.VertexCount)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("water:\n  segments_w: 64\nuniforms:\n  color_offset: 0.5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Water.SegmentsW != 64 {
		t.Errorf("expected overridden segments_w 64, got %d", cfg.Water.SegmentsW)
	}
	// Untouched fields keep defaults
	if cfg.Water.SegmentsH != 700 {
		t.Errorf("expected default segments_h 700, got %d", cfg.Water.SegmentsH)
	}
	if cfg.Uniforms.ColorOffset != 0.5 {
		t.Errorf("expected color_offset 0.5, got %g", cfg.Uniforms.ColorOffset)
	}
	if cfg.Uniforms.ColorMultiplier != 1.284 {
		t.Errorf("expected default color_multiplier, got %g", cfg.Uniforms.ColorMultiplier)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero screen", "screen:\n  width: 0\n"},
		{"no segments", "water:\n  segments_h: 0\n"},
		{"negative plane", "water:\n  width: -1\n"},
		{"bad clip range", "camera:\n  near: 10\n  far: 1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Uniforms.WaveSpeed = 1.5

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot: %v", err)
	}
	if loaded.Uniforms.WaveSpeed != 1.5 {
		t.Errorf("expected wave_speed 1.5 after roundtrip, got %g", loaded.Uniforms.WaveSpeed)
	}
}
