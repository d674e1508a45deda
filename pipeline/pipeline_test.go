package pipeline

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/pthm-cable/ragingsea/config"
	"github.com/pthm-cable/ragingsea/loop"
	"github.com/pthm-cable/ragingsea/telemetry"
	"github.com/pthm-cable/ragingsea/uniforms"
)

type recorder struct {
	calls []string
	store *uniforms.Store
	times []float32
	seen  []map[string]uniforms.Value
}

func (r *recorder) Update() bool {
	r.calls = append(r.calls, "controls")
	return true
}

func (r *recorder) BeginFrame() { r.calls = append(r.calls, "begin") }
func (r *recorder) EndFrame()   { r.calls = append(r.calls, "end") }

func (r *recorder) DrawScene() {
	r.calls = append(r.calls, "draw")
	r.times = append(r.times, r.store.Scalar(uniforms.Time))
	r.seen = append(r.seen, r.store.Snapshot())
}

type overlayFunc func()

func (f overlayFunc) Draw() { f() }

func newStore(t *testing.T) *uniforms.Store {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	store, err := uniforms.NewWaterStore(cfg.Uniforms)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestStepOrder(t *testing.T) {
	store := newStore(t)
	rec := &recorder{store: store}
	p := New(store, rec, rec)
	p.SetInput(func(loop.Frame) { rec.calls = append(rec.calls, "input") })
	p.AddOverlay(overlayFunc(func() { rec.calls = append(rec.calls, "panel") }))

	p.Step(loop.Frame{Elapsed: 1})

	want := []string{"input", "controls", "begin", "draw", "panel", "end"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	if !p.CameraMoved() {
		t.Error("expected camera moved to reflect controls update")
	}
}

func TestTimeUniformTracksElapsed(t *testing.T) {
	store := newStore(t)
	rec := &recorder{store: store}
	clock := &loop.ManualClock{}
	p := New(store, nil, rec)
	l := loop.New(clock, p.Step)

	var elapsed []float64
	for _, dt := range []float64{0, 0.016, 0.5, 2} {
		clock.Advance(dt)
		l.Tick()
		elapsed = append(elapsed, l.Last().Elapsed)
	}

	if len(rec.times) != len(elapsed) {
		t.Fatalf("expected %d draws, got %d", len(elapsed), len(rec.times))
	}
	for i, want := range elapsed {
		if rec.times[i] != float32(want) {
			t.Errorf("draw %d saw uTime=%v, want %v", i, rec.times[i], want)
		}
	}
	if store.Scalar(uniforms.Time) != float32(l.Last().Elapsed) {
		t.Errorf("uTime = %v, want latest elapsed %v", store.Scalar(uniforms.Time), l.Last().Elapsed)
	}
}

func TestInitialFrameRendersDefaults(t *testing.T) {
	store := newStore(t)
	rec := &recorder{store: store}
	clock := &loop.ManualClock{}
	p := New(store, nil, rec)

	var l *loop.Loop
	l = loop.New(clock, func(f loop.Frame) {
		p.Step(f)
		l.Stop()
	})
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(rec.seen) != 1 {
		t.Fatalf("expected exactly one frame, got %d", len(rec.seen))
	}
	defaults := newStore(t).Snapshot()
	for name, v := range rec.seen[0] {
		if v != defaults[name] {
			t.Errorf("%s = %+v, want default %+v", name, v, defaults[name])
		}
	}
}

func TestStepRecordsPerf(t *testing.T) {
	store := newStore(t)
	rec := &recorder{store: store}
	pc := telemetry.NewPerfCollector(10)
	p := New(store, rec, rec)
	p.SetPerf(pc)

	for i := 0; i < 3; i++ {
		p.Step(loop.Frame{Index: uint64(i)})
	}

	if pc.Frames() != 3 {
		t.Errorf("expected 3 timed frames, got %d", pc.Frames())
	}
	stats := pc.Stats()
	for _, phase := range telemetry.Phases {
		if _, ok := stats.PhaseAvg[phase]; !ok {
			t.Errorf("phase %s not recorded", phase)
		}
	}
}

func TestInputTimedSeparatelyFromUniforms(t *testing.T) {
	store := newStore(t)
	rec := &recorder{store: store}
	pc := telemetry.NewPerfCollector(10)
	p := New(store, rec, rec)
	p.SetPerf(pc)
	p.SetInput(func(loop.Frame) { time.Sleep(2 * time.Millisecond) })

	p.Step(loop.Frame{})

	stats := pc.Stats()
	if got := stats.PhaseAvg[telemetry.PhaseInput]; got < 2*time.Millisecond {
		t.Errorf("input phase = %v, want at least 2ms", got)
	}
	if got := stats.PhaseAvg[telemetry.PhaseUniforms]; got >= 2*time.Millisecond {
		t.Errorf("uniforms phase = %v, should not include input work", got)
	}
}
