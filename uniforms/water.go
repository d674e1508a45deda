package uniforms

import (
	"fmt"

	"github.com/pthm-cable/ragingsea/config"
)

// Water shader uniform names.
const (
	Time                 = "uTime"
	WaveSpeed            = "uWaveSpeed"
	BigWavesElevation    = "uBigWavesElevation"
	BigWavesFrequency    = "uBigWavesFrequency"
	SmallWavesElevation  = "uSmallWavesElevation"
	SmallWavesFrequency  = "uSmallWavesFrequency"
	SmallWavesSpeed      = "uSmallWavesSpeed"
	SmallWavesIterations = "uSmallWavesIterations"
	DepthColor           = "uDepthColor"
	SurfaceColor         = "uSurfaceColor"
	ColorOffset          = "uColorOffset"
	ColorMultiplier      = "uColorMultiplier"
)

// NewWaterStore defines the water shader uniforms with defaults from cfg.
func NewWaterStore(cfg config.UniformsConfig) (*Store, error) {
	depth, err := ParseHex(cfg.DepthColor)
	if err != nil {
		return nil, fmt.Errorf("depth color: %w", err)
	}
	surface, err := ParseHex(cfg.SurfaceColor)
	if err != nil {
		return nil, fmt.Errorf("surface color: %w", err)
	}

	fine := func(name string, v float64, max float32) Spec {
		return Spec{Name: name, Default: ScalarValue(float32(v)), Ranged: true, Min: 0, Max: max, Step: 0.001}
	}

	specs := []Spec{
		{Name: Time, Default: ScalarValue(0)},
		fine(WaveSpeed, cfg.WaveSpeed, 4),
		fine(BigWavesElevation, cfg.BigWavesElevation, 1),
		{
			Name:    BigWavesFrequency,
			Default: Vec2Value(float32(cfg.BigWavesFrequency[0]), float32(cfg.BigWavesFrequency[1])),
			Ranged:  true, Min: 0, Max: 10, Step: 0.001,
		},
		fine(SmallWavesElevation, cfg.SmallWavesElevation, 1),
		fine(SmallWavesFrequency, cfg.SmallWavesFrequency, 10),
		fine(SmallWavesSpeed, cfg.SmallWavesSpeed, 4),
		{
			Name:    SmallWavesIterations,
			Default: ScalarValue(float32(cfg.SmallWavesIterations)),
			Ranged:  true, Min: 0, Max: 8, Step: 1,
		},
		{Name: DepthColor, Default: ColorValue(depth)},
		{Name: SurfaceColor, Default: ColorValue(surface)},
		fine(ColorOffset, cfg.ColorOffset, 1),
		fine(ColorMultiplier, cfg.ColorMultiplier, 10),
	}

	s := NewStore()
	for _, spec := range specs {
		if err := s.Define(spec); err != nil {
			return nil, err
		}
	}
	return s, nil
}
