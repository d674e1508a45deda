package renderer

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/ragingsea/scene"
	"github.com/pthm-cable/ragingsea/shaders"
	"github.com/pthm-cable/ragingsea/uniforms"
)

// ErrShaderInvalid is returned when shader sources fail to compile or link.
var ErrShaderInvalid = shaders.ErrInvalid

type chunkMesh struct {
	mesh   rl.Mesh
	center r3.Vec // chunk centre in the plane's local space
}

// WaterRenderer draws every renderable entity of a scene with the wave shader,
// viewed from the scene's camera.
type WaterRenderer struct {
	scene    *scene.Scene
	shader   rl.Shader
	material rl.Material
	meshes   map[scene.PlaneGeometry][]chunkMesh
	locs     map[string]int32
}

// loadShader compiles src. A link failure leaves raylib's default shader id
// in place, which passes IsShaderValid, so that case is rejected as well.
func loadShader(src shaders.Sources) (rl.Shader, error) {
	shader := rl.LoadShaderFromMemory(src.Vertex, src.Fragment)
	prog := shaders.Program{
		ID:        shader.ID,
		DefaultID: rl.GetShaderIdDefault(),
		Valid:     rl.IsShaderValid(shader),
	}
	if err := prog.Check(); err != nil {
		// frees the location table; raylib never deletes its default program
		rl.UnloadShader(shader)
		return rl.Shader{}, err
	}
	return shader, nil
}

// NewWaterRenderer compiles the shader and builds one mesh per plane chunk of
// each renderable entity. Must be called after the raylib window is created.
func NewWaterRenderer(s *scene.Scene, src shaders.Sources) (*WaterRenderer, error) {
	shader, err := loadShader(src)
	if err != nil {
		return nil, err
	}

	w := &WaterRenderer{
		scene:    s,
		shader:   shader,
		material: rl.LoadMaterialDefault(),
		meshes:   make(map[scene.PlaneGeometry][]chunkMesh),
		locs:     make(map[string]int32),
	}
	w.material.Shader = shader

	vertices := 0
	s.Renderables(func(_ *scene.Transform, water *scene.Water, _ *scene.Material) {
		vertices += water.Geometry.VertexCount()
		if _, ok := w.meshes[water.Geometry]; ok {
			return
		}
		chunks := make([]chunkMesh, 0, len(water.Chunks))
		for _, c := range water.Chunks {
			// raylib generates planes in XZ, which is the authored XY plane
			// after the horizontal rotation, so only the offset is applied.
			mesh := rl.GenMeshPlane(float32(c.Width), float32(c.Height), c.SegmentsW, c.SegmentsH)
			chunks = append(chunks, chunkMesh{mesh: mesh, center: r3.Vec{X: c.CenterX, Y: c.CenterY}})
		}
		w.meshes[water.Geometry] = chunks
	})

	slog.Info("water renderer ready",
		"planes", len(w.meshes),
		"vertices", vertices,
	)
	return w, nil
}

// Reload swaps in a new shader. On failure the current shader stays active.
func (w *WaterRenderer) Reload(src shaders.Sources) error {
	shader, err := loadShader(src)
	if err != nil {
		return fmt.Errorf("reloading water shader: %w", err)
	}
	rl.UnloadShader(w.shader)
	w.shader = shader
	w.material.Shader = shader
	clear(w.locs)
	return nil
}

// location caches uniform locations; -1 means the shader does not use it.
func (w *WaterRenderer) location(name string) int32 {
	if loc, ok := w.locs[name]; ok {
		return loc
	}
	loc := rl.GetShaderLocation(w.shader, name)
	w.locs[name] = loc
	return loc
}

// upload sends every value in store to the shader.
func (w *WaterRenderer) upload(store *uniforms.Store) {
	store.Each(func(name string, v uniforms.Value) {
		loc := w.location(name)
		if loc < 0 {
			return
		}
		switch v.Kind {
		case uniforms.KindScalar:
			rl.SetShaderValue(w.shader, loc, []float32{v.Scalar}, rl.ShaderUniformFloat)
		case uniforms.KindVec2:
			rl.SetShaderValue(w.shader, loc, []float32{v.Vec2.X, v.Vec2.Y}, rl.ShaderUniformVec2)
		case uniforms.KindColor:
			rl.SetShaderValue(w.shader, loc, []float32{v.Color.R, v.Color.G, v.Color.B}, rl.ShaderUniformVec3)
		}
	})
}

// Draw renders the scene's water entities from its camera. Must be called
// inside a drawing target.
func (w *WaterRenderer) Draw() {
	beginCamera(w.scene.Camera().Camera)
	w.scene.Renderables(w.drawEntity)
	rl.EndMode3D()
}

func (w *WaterRenderer) drawEntity(transform *scene.Transform, water *scene.Water, material *scene.Material) {
	chunks, ok := w.meshes[water.Geometry]
	if !ok {
		return
	}
	w.upload(material.Uniforms)
	flags := material.Flags

	if flags.DoubleSided {
		rl.DisableBackfaceCulling()
	}
	if flags.Transparent {
		rl.BeginBlendMode(rl.BlendAlpha)
	}
	if flags.Wireframe {
		rl.EnableWireMode()
	}

	for _, c := range chunks {
		pos := transform.Apply(c.center)
		rl.DrawMesh(c.mesh, w.material, rl.MatrixTranslate(float32(pos.X), float32(pos.Y), float32(pos.Z)))
	}

	if flags.Wireframe {
		rl.DisableWireMode()
	}
	if flags.Transparent {
		rl.EndBlendMode()
	}
	if flags.DoubleSided {
		rl.EnableBackfaceCulling()
	}
}

// Unload frees the meshes and the shader.
func (w *WaterRenderer) Unload() {
	for _, chunks := range w.meshes {
		for i := range chunks {
			rl.UnloadMesh(&chunks[i].mesh)
		}
	}
	clear(w.meshes)
	// UnloadMaterial also unloads the attached shader
	rl.UnloadMaterial(w.material)
}
