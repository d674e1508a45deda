package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/ragingsea/camera"
	"github.com/pthm-cable/ragingsea/uniforms"
)

// Transform places an object in the world. Rotation is Euler XYZ in radians.
type Transform struct {
	Position r3.Vec
	Rotation r3.Vec
}

// Apply maps a local point to world space.
func (t Transform) Apply(p r3.Vec) r3.Vec {
	p = rotateZ(p, t.Rotation.Z)
	p = rotateY(p, t.Rotation.Y)
	p = rotateX(p, t.Rotation.X)
	return r3.Add(p, t.Position)
}

func rotateX(p r3.Vec, a float64) r3.Vec {
	s, c := math.Sincos(a)
	return r3.Vec{X: p.X, Y: p.Y*c - p.Z*s, Z: p.Y*s + p.Z*c}
}

func rotateY(p r3.Vec, a float64) r3.Vec {
	s, c := math.Sincos(a)
	return r3.Vec{X: p.X*c + p.Z*s, Y: p.Y, Z: -p.X*s + p.Z*c}
}

func rotateZ(p r3.Vec, a float64) r3.Vec {
	s, c := math.Sincos(a)
	return r3.Vec{X: p.X*c - p.Y*s, Y: p.X*s + p.Y*c, Z: p.Z}
}

// Water is the subdivided plane and its mesh tiles.
type Water struct {
	Geometry PlaneGeometry
	Chunks   []Chunk
}

// Flags are rendering-mode switches of a material. They are not uniforms.
type Flags struct {
	Wireframe   bool
	Transparent bool
	DoubleSided bool
}

// Material binds a shader's uniform table by reference.
type Material struct {
	Uniforms *uniforms.Store
	Flags    *Flags
}

// CameraRig is the scene's viewpoint.
type CameraRig struct {
	Camera   *camera.Perspective
	Controls *camera.OrbitControls
}
