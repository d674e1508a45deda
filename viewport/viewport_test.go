package viewport

import (
	"math"
	"testing"

	"github.com/pthm-cable/ragingsea/camera"
)

type fakeSurface struct {
	width, height int
	ratio         float64
	sizeCalls     int
	ratioCalls    int
}

func (f *fakeSurface) SetSize(w, h int) {
	f.width, f.height = w, h
	f.sizeCalls++
}

func (f *fakeSurface) SetPixelRatio(r float64) {
	f.ratio = r
	f.ratioCalls++
}

func TestClampPixelRatio(t *testing.T) {
	tests := []struct {
		dpr, want float64
	}{
		{1, 1},
		{1.5, 1.5},
		{2, 2},
		{3, 2},
		{4.5, 2},
		{0, 1},
		{-1, 1},
	}
	for _, tc := range tests {
		if got := ClampPixelRatio(tc.dpr, MaxPixelRatio); got != tc.want {
			t.Errorf("ClampPixelRatio(%g) = %g, want %g", tc.dpr, got, tc.want)
		}
	}
}

func TestApplyUpdatesCameraAndSurface(t *testing.T) {
	cam := camera.NewPerspective(75, 1, 0.1, 100)
	surface := &fakeSurface{}
	h := NewHandler(cam, surface, 0)

	if !h.Apply(Size{Width: 1600, Height: 900}, 3) {
		t.Fatal("expected first apply to change state")
	}

	if math.Abs(cam.Aspect-1600.0/900.0) > 1e-12 {
		t.Errorf("aspect = %f, want %f", cam.Aspect, 1600.0/900.0)
	}
	if surface.width != 1600 || surface.height != 900 {
		t.Errorf("surface = %dx%d, want 1600x900", surface.width, surface.height)
	}
	if surface.ratio != 2 {
		t.Errorf("pixel ratio = %g, want clamped 2", surface.ratio)
	}
	p := cam.Projection()
	if math.Abs(p.At(1, 1)/p.At(0, 0)-1600.0/900.0) > 1e-9 {
		t.Error("projection not updated for new aspect")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	cam := camera.NewPerspective(75, 1, 0.1, 100)
	surface := &fakeSurface{}
	h := NewHandler(cam, surface, 0)

	h.Apply(Size{Width: 800, Height: 600}, 1)
	for i := 0; i < 5; i++ {
		if h.Apply(Size{Width: 800, Height: 600}, 1) {
			t.Fatal("repeated identical apply reported a change")
		}
	}
	if surface.sizeCalls != 1 || surface.ratioCalls != 1 {
		t.Errorf("expected one surface update, got size=%d ratio=%d", surface.sizeCalls, surface.ratioCalls)
	}
	if h.Size() != (Size{Width: 800, Height: 600}) || h.PixelRatio() != 1 {
		t.Errorf("unexpected handler state %v @ %g", h.Size(), h.PixelRatio())
	}

	// A ratio change alone is a change
	if !h.Apply(Size{Width: 800, Height: 600}, 1.5) {
		t.Error("expected pixel ratio change to apply")
	}
	// Both 3 and 4 clamp to 2, so the second is a no-op
	h.Apply(Size{Width: 800, Height: 600}, 3)
	if h.Apply(Size{Width: 800, Height: 600}, 4) {
		t.Error("expected clamped-equal ratio to be a no-op")
	}
}

func TestApplyIgnoresInvalidSize(t *testing.T) {
	cam := camera.NewPerspective(75, 1.5, 0.1, 100)
	surface := &fakeSurface{}
	h := NewHandler(cam, surface, 0)

	if h.Apply(Size{Width: 0, Height: 0}, 1) {
		t.Error("expected minimized window to be ignored")
	}
	if cam.Aspect != 1.5 || surface.sizeCalls != 0 {
		t.Error("invalid size must not touch camera or surface")
	}
}
