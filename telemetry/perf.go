package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names for one rendered frame.
const (
	PhaseInput    = "input"
	PhaseUniforms = "uniforms"
	PhaseControls = "controls"
	PhaseRender   = "render"
	PhasePanel    = "panel"
)

// Phases lists the frame phases in execution order.
var Phases = []string{PhaseInput, PhaseUniforms, PhaseControls, PhaseRender, PhasePanel}

// PerfSample holds timing data for a single frame.
type PerfSample struct {
	FrameDuration time.Duration
	Phases        map[string]time.Duration
}

// PerfCollector tracks frame timing over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	totalFrames   int64
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string

	now func() time.Time
}

// NewPerfCollector creates a collector averaging over windowSize frames.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 120
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
		now:           time.Now,
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = p.now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase ends the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	now := p.now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes the current frame and records the sample.
func (p *PerfCollector) EndFrame() {
	now := p.now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
		p.lastPhase = ""
	}

	p.samples[p.writeIndex] = PerfSample{
		FrameDuration: now.Sub(p.frameStart),
		Phases:        p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
	p.totalFrames++
}

// Frames returns the number of frames recorded since creation.
func (p *PerfCollector) Frames() int64 {
	return p.totalFrames
}

// PerfStats holds aggregated frame statistics.
type PerfStats struct {
	Samples int

	AvgFrame time.Duration
	MinFrame time.Duration
	MaxFrame time.Duration
	StdFrame time.Duration
	P50Frame time.Duration
	P95Frame time.Duration

	// Average duration and share of the frame per phase
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	FPS float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	if p.sampleCount == 0 {
		return PerfStats{
			PhaseAvg: make(map[string]time.Duration),
			PhasePct: make(map[string]float64),
		}
	}

	frames := make([]float64, p.sampleCount)
	phaseSum := make(map[string]time.Duration)
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		frames[i] = float64(s.FrameDuration)
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}
	sort.Float64s(frames)

	mean, std := stat.MeanStdDev(frames, nil)
	if p.sampleCount < 2 {
		std = 0
	}
	avg := time.Duration(mean)

	phaseAvg := make(map[string]time.Duration)
	phasePct := make(map[string]float64)
	for phase, sum := range phaseSum {
		phaseAvg[phase] = sum / time.Duration(p.sampleCount)
		if avg > 0 {
			phasePct[phase] = float64(phaseAvg[phase]) / float64(avg) * 100
		}
	}

	var fps float64
	if avg > 0 {
		fps = float64(time.Second) / float64(avg)
	}

	return PerfStats{
		Samples:  p.sampleCount,
		AvgFrame: avg,
		MinFrame: time.Duration(frames[0]),
		MaxFrame: time.Duration(frames[len(frames)-1]),
		StdFrame: time.Duration(std),
		P50Frame: time.Duration(stat.Quantile(0.5, stat.Empirical, frames, nil)),
		P95Frame: time.Duration(stat.Quantile(0.95, stat.Empirical, frames, nil)),
		PhaseAvg: phaseAvg,
		PhasePct: phasePct,
		FPS:      fps,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("samples", s.Samples),
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("p95_frame_us", s.P95Frame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Float64("fps", s.FPS),
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, slog.Float64(phase+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of frame stats.
type PerfStatsCSV struct {
	Frame       int64   `csv:"frame"`
	AvgFrameUS  int64   `csv:"avg_frame_us"`
	MinFrameUS  int64   `csv:"min_frame_us"`
	MaxFrameUS  int64   `csv:"max_frame_us"`
	StdFrameUS  int64   `csv:"std_frame_us"`
	P50FrameUS  int64   `csv:"p50_frame_us"`
	P95FrameUS  int64   `csv:"p95_frame_us"`
	FPS         float64 `csv:"fps"`
	InputPct    float64 `csv:"input_pct"`
	UniformsPct float64 `csv:"uniforms_pct"`
	ControlsPct float64 `csv:"controls_pct"`
	RenderPct   float64 `csv:"render_pct"`
	PanelPct    float64 `csv:"panel_pct"`
}

// ToCSV converts PerfStats to a CSV row ending at frame.
func (s PerfStats) ToCSV(frame int64) PerfStatsCSV {
	return PerfStatsCSV{
		Frame:       frame,
		AvgFrameUS:  s.AvgFrame.Microseconds(),
		MinFrameUS:  s.MinFrame.Microseconds(),
		MaxFrameUS:  s.MaxFrame.Microseconds(),
		StdFrameUS:  s.StdFrame.Microseconds(),
		P50FrameUS:  s.P50Frame.Microseconds(),
		P95FrameUS:  s.P95Frame.Microseconds(),
		FPS:         s.FPS,
		InputPct:    s.PhasePct[PhaseInput],
		UniformsPct: s.PhasePct[PhaseUniforms],
		ControlsPct: s.PhasePct[PhaseControls],
		RenderPct:   s.PhasePct[PhaseRender],
		PanelPct:    s.PhasePct[PhasePanel],
	}
}
