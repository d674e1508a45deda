package panel

import (
	"github.com/pthm-cable/ragingsea/config"
	"github.com/pthm-cable/ragingsea/uniforms"
)

// Control IDs of the water panel.
const (
	IDColorOffset          = "Color/Color Offset"
	IDColorMultiplier      = "Color/Color Multiplier"
	IDDepthColor           = "Color/Depth Color"
	IDSurfaceColor         = "Color/Suface Color"
	IDBigWavesElevation    = "Big Waves/Waves Elevation"
	IDBigWavesFrequencyX   = "Big Waves/Wave Frequency X"
	IDBigWavesFrequencyY   = "Big Waves/Wave Frequency Y"
	IDWaveSpeed            = "Big Waves/Waves Speed"
	IDSmallWavesElevation  = "Small Waves/Waves Elevation"
	IDSmallWavesFrequency  = "Small Waves/Wave Frequency"
	IDSmallWavesSpeed      = "Small Waves/Waves Speed"
	IDSmallWavesIterations = "Small Waves/Wave Iteration"
	IDWireframe            = "wireframe"
)

// NewWaterPanel builds the water debug panel: Color, Big Waves and Small Waves
// folders plus a root wireframe toggle.
func NewWaterPanel(store *uniforms.Store, wireframe *bool, cfg config.PanelConfig) *Panel {
	p := New(store, "Debug", cfg.Width, cfg.Collapsed)

	color := p.AddFolder("Color")
	color.AddSlider(uniforms.ColorOffset, 0, 1, 0.001, "Color Offset")
	color.AddSlider(uniforms.ColorMultiplier, 0, 10, 0.001, "Color Multiplier")
	color.AddColor(uniforms.DepthColor, "Depth Color")
	color.AddColor(uniforms.SurfaceColor, "Suface Color")

	big := p.AddFolder("Big Waves")
	big.AddSlider(uniforms.BigWavesElevation, 0, 1, 0.001, "Waves Elevation")
	big.AddVec2Slider(uniforms.BigWavesFrequency, uniforms.AxisX, 0, 10, 0.001, "Wave Frequency X")
	big.AddVec2Slider(uniforms.BigWavesFrequency, uniforms.AxisY, 0, 10, 0.001, "Wave Frequency Y")
	big.AddSlider(uniforms.WaveSpeed, 0, 4, 0.001, "Waves Speed")

	small := p.AddFolder("Small Waves")
	small.AddSlider(uniforms.SmallWavesElevation, 0, 1, 0.001, "Waves Elevation")
	small.AddSlider(uniforms.SmallWavesFrequency, 0, 10, 0.001, "Wave Frequency")
	small.AddSlider(uniforms.SmallWavesSpeed, 0, 4, 0.001, "Waves Speed")
	small.AddSlider(uniforms.SmallWavesIterations, 0, 8, 1, "Wave Iteration")

	p.AddToggle(IDWireframe,
		func() bool { return *wireframe },
		func(v bool) { *wireframe = v },
	)

	return p
}
