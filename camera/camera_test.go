package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func newTestCamera() *Perspective {
	cam := NewPerspective(75, 1280.0/720.0, 0.1, 100)
	cam.Position = r3.Vec{X: 1, Y: 0.6, Z: 1}
	cam.Target = r3.Vec{}
	return cam
}

func TestProjectionMatrix(t *testing.T) {
	cam := NewPerspective(90, 2, 1, 10)
	p := cam.Projection()

	// fov 90 => f = 1
	if math.Abs(p.At(1, 1)-1) > 1e-9 {
		t.Errorf("expected f=1, got %f", p.At(1, 1))
	}
	if math.Abs(p.At(0, 0)-0.5) > 1e-9 {
		t.Errorf("expected f/aspect=0.5, got %f", p.At(0, 0))
	}
	if p.At(3, 2) != -1 {
		t.Errorf("expected perspective divide term -1, got %f", p.At(3, 2))
	}
}

func TestSetAspectUpdatesProjection(t *testing.T) {
	cam := newTestCamera()
	cam.SetAspect(1)

	if cam.Aspect != 1 {
		t.Fatalf("expected aspect 1, got %f", cam.Aspect)
	}
	p := cam.Projection()
	if math.Abs(p.At(0, 0)-p.At(1, 1)) > 1e-9 {
		t.Errorf("square aspect should give equal x/y scale, got %f vs %f", p.At(0, 0), p.At(1, 1))
	}

	// Invalid ratios are ignored
	cam.SetAspect(0)
	cam.SetAspect(math.Inf(1))
	if cam.Aspect != 1 {
		t.Errorf("expected aspect unchanged by invalid values, got %f", cam.Aspect)
	}
}

func TestProjectionIsCopied(t *testing.T) {
	cam := newTestCamera()
	p := cam.Projection()
	p.Set(0, 0, 123)

	if cam.Projection().At(0, 0) == 123 {
		t.Error("mutating returned projection should not affect the camera")
	}
}

func TestDistance(t *testing.T) {
	cam := newTestCamera()
	want := math.Sqrt(1 + 0.36 + 1)
	if math.Abs(cam.Distance()-want) > 1e-9 {
		t.Errorf("expected distance %f, got %f", want, cam.Distance())
	}
}
