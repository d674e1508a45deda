// Package camera provides a perspective camera and damped orbit controls.
package camera

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Perspective is a pinhole camera looking from Position at Target.
type Perspective struct {
	Position r3.Vec
	Target   r3.Vec
	Up       r3.Vec

	// Vertical field of view in degrees
	FOV float64

	Aspect    float64
	Near, Far float64

	projection *mat.Dense
}

// NewPerspective creates a camera at the origin looking down -Z.
func NewPerspective(fov, aspect, near, far float64) *Perspective {
	c := &Perspective{
		Target: r3.Vec{Z: -1},
		Up:     r3.Vec{Y: 1},
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjection()
	return c
}

// SetAspect updates the aspect ratio and the projection matrix.
// Non-positive or unchanged ratios are ignored.
func (c *Perspective) SetAspect(aspect float64) {
	if aspect <= 0 || math.IsInf(aspect, 0) || math.IsNaN(aspect) {
		return
	}
	if aspect == c.Aspect && c.projection != nil {
		return
	}
	c.Aspect = aspect
	c.UpdateProjection()
}

// UpdateProjection recomputes the projection matrix from FOV, Aspect, Near and Far.
// Call it after changing those fields directly.
func (c *Perspective) UpdateProjection() {
	f := 1 / math.Tan(c.FOV*math.Pi/360)
	nf := c.Near - c.Far
	c.projection = mat.NewDense(4, 4, []float64{
		f / c.Aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (c.Far + c.Near) / nf, 2 * c.Far * c.Near / nf,
		0, 0, -1, 0,
	})
}

// Projection returns a copy of the OpenGL-style projection matrix.
func (c *Perspective) Projection() *mat.Dense {
	return mat.DenseCopyOf(c.projection)
}

// View returns the world-to-camera (look-at) matrix.
func (c *Perspective) View() *mat.Dense {
	forward := r3.Unit(r3.Sub(c.Target, c.Position))
	right := r3.Unit(r3.Cross(forward, c.Up))
	up := r3.Cross(right, forward)

	return mat.NewDense(4, 4, []float64{
		right.X, right.Y, right.Z, -r3.Dot(right, c.Position),
		up.X, up.Y, up.Z, -r3.Dot(up, c.Position),
		-forward.X, -forward.Y, -forward.Z, r3.Dot(forward, c.Position),
		0, 0, 0, 1,
	})
}

// Distance returns the distance from Position to Target.
func (c *Perspective) Distance() float64 {
	return r3.Norm(r3.Sub(c.Position, c.Target))
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
