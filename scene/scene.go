// Package scene assembles the water plane and camera into an ECS world.
package scene

import (
	"fmt"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ragingsea/config"
	"github.com/pthm-cable/ragingsea/uniforms"
)

// Scene holds the world, the query over drawable entities and the camera entity.
type Scene struct {
	world *ecs.World

	cameraMapper *ecs.Map1[CameraRig]
	renderables  *ecs.Filter3[Transform, Water, Material]

	camera ecs.Entity
}

// Assemble builds the water plane from cfg, binds store and flags to its
// material, and adds the camera rig. The plane is authored in XY and rotated
// -90 degrees about X to lie horizontally.
func Assemble(cfg config.WaterConfig, store *uniforms.Store, flags *Flags, rig CameraRig) (*Scene, error) {
	if store == nil || flags == nil || rig.Camera == nil {
		return nil, fmt.Errorf("scene: store, flags and camera are required")
	}

	geometry := PlaneGeometry{
		Width:     cfg.Width,
		Height:    cfg.Height,
		SegmentsW: cfg.SegmentsW,
		SegmentsH: cfg.SegmentsH,
	}
	chunks, err := geometry.Chunks(cfg.ChunkSegments)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	world := ecs.NewWorld()
	s := &Scene{
		world:        world,
		cameraMapper: ecs.NewMap1[CameraRig](world),
		renderables:  ecs.NewFilter3[Transform, Water, Material](world),
	}

	transform := Transform{}
	transform.Rotation.X = -math.Pi * 0.5
	water := Water{Geometry: geometry, Chunks: chunks}
	material := Material{Uniforms: store, Flags: flags}
	ecs.NewMap3[Transform, Water, Material](world).NewEntity(&transform, &water, &material)

	s.camera = s.cameraMapper.NewEntity(&rig)

	return s, nil
}

// Camera returns the camera rig.
func (s *Scene) Camera() *CameraRig {
	return s.cameraMapper.Get(s.camera)
}

// VertexCount sums the plane vertices of all drawable entities.
func (s *Scene) VertexCount() int {
	n := 0
	s.Renderables(func(_ *Transform, w *Water, _ *Material) {
		n += w.Geometry.VertexCount()
	})
	return n
}

// Renderables visits every drawable entity.
func (s *Scene) Renderables(fn func(t *Transform, w *Water, m *Material)) {
	query := s.renderables.Query()
	for query.Next() {
		fn(query.Get())
	}
}
