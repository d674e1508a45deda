// Package config provides configuration loading and access for the water demo.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Panel     PanelConfig     `yaml:"panel"`
	Water     WaterConfig     `yaml:"water"`
	Camera    CameraConfig    `yaml:"camera"`
	Uniforms  UniformsConfig  `yaml:"uniforms"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	TargetFPS     int     `yaml:"target_fps"`
	MaxPixelRatio float64 `yaml:"max_pixel_ratio"` // Render scale cap (fragment cost bound)
	Resizable     bool    `yaml:"resizable"`
}

// PanelConfig holds debug panel settings.
type PanelConfig struct {
	Width     int  `yaml:"width"`
	Collapsed bool `yaml:"collapsed"` // Initial state
}

// WaterConfig holds the plane geometry and material flags.
type WaterConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SegmentsW     int     `yaml:"segments_w"`
	SegmentsH     int     `yaml:"segments_h"`
	ChunkSegments int     `yaml:"chunk_segments"` // Max segments per mesh tile along one axis
	Wireframe     bool    `yaml:"wireframe"`
	Transparent   bool    `yaml:"transparent"`
	DoubleSided   bool    `yaml:"double_sided"`
}

// CameraConfig holds perspective camera and orbit control parameters.
type CameraConfig struct {
	FOV           float64    `yaml:"fov"` // Vertical field of view in degrees
	Near          float64    `yaml:"near"`
	Far           float64    `yaml:"far"`
	Position      [3]float64 `yaml:"position"`
	Target        [3]float64 `yaml:"target"`
	EnableDamping bool       `yaml:"enable_damping"`
	DampingFactor float64    `yaml:"damping_factor"`
	RotateSpeed   float64    `yaml:"rotate_speed"`
	ZoomSpeed     float64    `yaml:"zoom_speed"`
	MinDistance   float64    `yaml:"min_distance"`
	MaxDistance   float64    `yaml:"max_distance"`
}

// UniformsConfig holds the initial water uniform values.
type UniformsConfig struct {
	WaveSpeed            float64    `yaml:"wave_speed"`
	BigWavesElevation    float64    `yaml:"big_waves_elevation"`
	BigWavesFrequency    [2]float64 `yaml:"big_waves_frequency"`
	SmallWavesElevation  float64    `yaml:"small_waves_elevation"`
	SmallWavesFrequency  float64    `yaml:"small_waves_frequency"`
	SmallWavesSpeed      float64    `yaml:"small_waves_speed"`
	SmallWavesIterations float64    `yaml:"small_waves_iterations"`
	DepthColor           string     `yaml:"depth_color"`   // #RRGGBB
	SurfaceColor         string     `yaml:"surface_color"` // #RRGGBB
	ColorOffset          float64    `yaml:"color_offset"`
	ColorMultiplier      float64    `yaml:"color_multiplier"`
}

// TelemetryConfig holds frame timing parameters.
type TelemetryConfig struct {
	PerfWindow     int     `yaml:"perf_window"`      // Frames per rolling window
	LogIntervalSec float64 `yaml:"log_interval_sec"` // Seconds between perf logs
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	Aspect      float64
	VertexCount int
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values that would produce a degenerate scene.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Water.SegmentsW < 1 || c.Water.SegmentsH < 1 {
		return fmt.Errorf("water segments must be at least 1, got %dx%d", c.Water.SegmentsW, c.Water.SegmentsH)
	}
	if c.Water.Width <= 0 || c.Water.Height <= 0 {
		return fmt.Errorf("water size must be positive, got %gx%g", c.Water.Width, c.Water.Height)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip range invalid: near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Aspect = float64(c.Screen.Width) / float64(c.Screen.Height)
	c.Derived.VertexCount = (c.Water.SegmentsW + 1) * (c.Water.SegmentsH + 1)

	if c.Screen.MaxPixelRatio <= 0 {
		c.Screen.MaxPixelRatio = 2
	}
	if c.Water.ChunkSegments <= 0 {
		c.Water.ChunkSegments = 100
	}
	if c.Telemetry.PerfWindow <= 0 {
		c.Telemetry.PerfWindow = 120
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
