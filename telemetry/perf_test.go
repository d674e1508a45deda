package telemetry

import (
	"testing"
	"time"
)

// fakeNow returns a clock advanced explicitly by the test.
func fakeNow(pc *PerfCollector) *time.Time {
	t := time.Unix(0, 0)
	pc.now = func() time.Time { return t }
	return &t
}

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)
	now := fakeNow(pc)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseUniforms)
		*now = now.Add(100 * time.Microsecond)
		pc.StartPhase(PhaseRender)
		*now = now.Add(300 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.AvgFrame != 400*time.Microsecond {
		t.Errorf("expected 400us average frame, got %v", stats.AvgFrame)
	}
	if stats.PhaseAvg[PhaseUniforms] != 100*time.Microsecond {
		t.Errorf("expected 100us uniforms phase, got %v", stats.PhaseAvg[PhaseUniforms])
	}
	if pct := stats.PhasePct[PhaseRender]; pct < 74.9 || pct > 75.1 {
		t.Errorf("expected render at 75%%, got %v", pct)
	}
	if stats.FPS != 2500 {
		t.Errorf("expected 2500 fps, got %v", stats.FPS)
	}
	if stats.StdFrame != 0 {
		t.Errorf("expected zero stddev for constant frames, got %v", stats.StdFrame)
	}
	if pc.Frames() != 5 {
		t.Errorf("expected 5 frames, got %d", pc.Frames())
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(4)
	now := fakeNow(pc)

	// Slow frames first, then enough fast ones to push them out of the window
	for i := 0; i < 10; i++ {
		d := time.Millisecond
		if i < 4 {
			d = 50 * time.Millisecond
		}
		pc.StartFrame()
		*now = now.Add(d)
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.Samples != 4 {
		t.Errorf("expected 4 samples, got %d", stats.Samples)
	}
	if stats.MaxFrame != time.Millisecond {
		t.Errorf("expected slow frames to leave the window, max %v", stats.MaxFrame)
	}
	if pc.Frames() != 10 {
		t.Errorf("expected 10 total frames, got %d", pc.Frames())
	}
}

func TestPerfCollector_Quantiles(t *testing.T) {
	pc := NewPerfCollector(100)
	now := fakeNow(pc)

	for i := 1; i <= 100; i++ {
		pc.StartFrame()
		*now = now.Add(time.Duration(i) * time.Millisecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.MinFrame != time.Millisecond || stats.MaxFrame != 100*time.Millisecond {
		t.Errorf("min/max = %v/%v", stats.MinFrame, stats.MaxFrame)
	}
	if stats.P50Frame != 50*time.Millisecond {
		t.Errorf("expected p50 50ms, got %v", stats.P50Frame)
	}
	if stats.P95Frame != 95*time.Millisecond {
		t.Errorf("expected p95 95ms, got %v", stats.P95Frame)
	}
	if stats.StdFrame <= 0 {
		t.Error("expected positive stddev")
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgFrame != 0 || stats.FPS != 0 {
		t.Error("expected zero stats for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_SingleSample(t *testing.T) {
	pc := NewPerfCollector(10)
	now := fakeNow(pc)

	pc.StartFrame()
	*now = now.Add(16 * time.Millisecond)
	pc.EndFrame()

	stats := pc.Stats()
	if stats.StdFrame != 0 {
		t.Errorf("expected zero stddev with one sample, got %v", stats.StdFrame)
	}
	if stats.FPS < 62 || stats.FPS > 63 {
		t.Errorf("expected ~62.5 fps, got %v", stats.FPS)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgFrame: 2 * time.Millisecond,
		FPS:      500,
		PhasePct: map[string]float64{PhaseInput: 3, PhaseRender: 80, PhasePanel: 5},
	}

	row := stats.ToCSV(120)
	if row.Frame != 120 || row.AvgFrameUS != 2000 {
		t.Errorf("unexpected row %+v", row)
	}
	if row.InputPct != 3 || row.RenderPct != 80 || row.PanelPct != 5 || row.UniformsPct != 0 {
		t.Errorf("unexpected phase columns %+v", row)
	}
}
