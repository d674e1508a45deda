package scene

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/ragingsea/camera"
	"github.com/pthm-cable/ragingsea/config"
	"github.com/pthm-cable/ragingsea/uniforms"
)

func assemble(t *testing.T) (*Scene, *uniforms.Store, *Flags) {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	store, err := uniforms.NewWaterStore(cfg.Uniforms)
	if err != nil {
		t.Fatal(err)
	}
	flags := &Flags{Wireframe: cfg.Water.Wireframe, Transparent: cfg.Water.Transparent, DoubleSided: cfg.Water.DoubleSided}
	cam, controls := camera.NewFromConfig(cfg.Camera, cfg.Derived.Aspect)

	s, err := Assemble(cfg.Water, store, flags, CameraRig{Camera: cam, Controls: controls})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	return s, store, flags
}

// only returns the single drawable entity.
func only(t *testing.T, s *Scene) (*Transform, *Water, *Material) {
	t.Helper()
	var (
		tr *Transform
		w  *Water
		m  *Material
	)
	n := 0
	s.Renderables(func(t2 *Transform, w2 *Water, m2 *Material) {
		tr, w, m = t2, w2, m2
		n++
	})
	if n != 1 {
		t.Fatalf("expected one renderable, got %d", n)
	}
	return tr, w, m
}

func TestAssembleWater(t *testing.T) {
	s, store, flags := assemble(t)

	transform, water, material := only(t, s)
	if water.Geometry.SegmentsW != 700 || water.Geometry.Width != 8 {
		t.Errorf("unexpected geometry %+v", water.Geometry)
	}
	if len(water.Chunks) != 49 {
		t.Errorf("expected 7x7 chunks, got %d", len(water.Chunks))
	}
	if transform.Rotation.X != -math.Pi/2 {
		t.Errorf("expected -pi/2 X rotation, got %f", transform.Rotation.X)
	}
	if material.Uniforms != store || material.Flags != flags {
		t.Error("material must reference the shared store and flags")
	}
}

func TestMaterialSeesStoreMutations(t *testing.T) {
	s, store, flags := assemble(t)

	store.SetScalar(uniforms.Time, 3.25)
	flags.Wireframe = false

	_, _, material := only(t, s)
	if got := material.Uniforms.Scalar(uniforms.Time); got != 3.25 {
		t.Errorf("material sees uTime=%f, want 3.25", got)
	}
	if material.Flags.Wireframe {
		t.Error("material should see wireframe flag change")
	}
}

func TestRenderablesVisitsWaterOnly(t *testing.T) {
	s, _, _ := assemble(t)

	count := 0
	s.Renderables(func(tr *Transform, w *Water, m *Material) {
		count++
		if w == nil || m == nil {
			t.Error("nil components")
		}
	})
	if count != 1 {
		t.Errorf("expected one renderable, got %d", count)
	}
	if got := s.VertexCount(); got != 701*701 {
		t.Errorf("VertexCount = %d, want %d", got, 701*701)
	}

	rig := s.Camera()
	if rig.Camera == nil || rig.Controls == nil {
		t.Fatal("camera rig missing")
	}
	if rig.Camera.Position != (r3.Vec{X: 1, Y: 0.6, Z: 1}) {
		t.Errorf("camera position %v, want (1, 0.6, 1)", rig.Camera.Position)
	}
}

func TestAssembleRequiresDependencies(t *testing.T) {
	cfg, _ := config.Load("")
	if _, err := Assemble(cfg.Water, nil, &Flags{}, CameraRig{}); err == nil {
		t.Error("expected error without store")
	}
}

func TestTransformHorizontal(t *testing.T) {
	tr := Transform{Rotation: r3.Vec{X: -math.Pi / 2}}

	got := tr.Apply(r3.Vec{X: 2, Y: 3, Z: 0})
	want := r3.Vec{X: 2, Y: 0, Z: -3}
	if r3.Norm(r3.Sub(got, want)) > 1e-9 {
		t.Errorf("Apply = %v, want %v", got, want)
	}

	// Plane normal +Z becomes +Y (up)
	n := tr.Apply(r3.Vec{Z: 1})
	if r3.Norm(r3.Sub(n, r3.Vec{Y: 1})) > 1e-9 {
		t.Errorf("normal = %v, want +Y", n)
	}
}

func TestChunksTilePlane(t *testing.T) {
	tests := []struct {
		name     string
		geometry PlaneGeometry
		max      int
		cols     int
		rows     int
	}{
		{"default", PlaneGeometry{8, 8, 700, 700}, 100, 7, 7},
		{"uneven", PlaneGeometry{4, 2, 257, 13}, 100, 3, 1},
		{"single", PlaneGeometry{1, 1, 10, 10}, 100, 1, 1},
		{"over limit", PlaneGeometry{8, 8, 700, 700}, 1000, 3, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chunks, err := tc.geometry.Chunks(tc.max)
			if err != nil {
				t.Fatal(err)
			}
			if len(chunks) != tc.cols*tc.rows {
				t.Fatalf("expected %d chunks, got %d", tc.cols*tc.rows, len(chunks))
			}

			segW, segH := 0, 0
			area := 0.0
			cells := 0
			for _, c := range chunks {
				if c.VertexCount() > 65535 {
					t.Errorf("chunk %d,%d has %d vertices", c.Col, c.Row, c.VertexCount())
				}
				if c.Row == 0 {
					segW += c.SegmentsW
				}
				if c.Col == 0 {
					segH += c.SegmentsH
				}
				area += c.Width * c.Height
				cells += c.SegmentsW * c.SegmentsH
				// Tile stays inside the plane
				if math.Abs(c.CenterX)+c.Width/2 > tc.geometry.Width/2+1e-9 ||
					math.Abs(c.CenterY)+c.Height/2 > tc.geometry.Height/2+1e-9 {
					t.Errorf("chunk %d,%d extends past the plane", c.Col, c.Row)
				}
			}
			if segW != tc.geometry.SegmentsW || segH != tc.geometry.SegmentsH {
				t.Errorf("segments %dx%d, want %dx%d", segW, segH, tc.geometry.SegmentsW, tc.geometry.SegmentsH)
			}
			if math.Abs(area-tc.geometry.Width*tc.geometry.Height) > 1e-9 {
				t.Errorf("area %f, want %f", area, tc.geometry.Width*tc.geometry.Height)
			}
			if 2*cells != tc.geometry.TriangleCount() {
				t.Errorf("triangles %d, want %d", 2*cells, tc.geometry.TriangleCount())
			}
		})
	}
}

func TestChunksRejectEmptyPlane(t *testing.T) {
	if _, err := (PlaneGeometry{1, 1, 0, 5}).Chunks(100); err == nil {
		t.Error("expected error for zero segments")
	}
}
