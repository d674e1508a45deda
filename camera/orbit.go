package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Keeps the polar angle away from the poles so the look-at basis stays defined.
const polarEpsilon = 1e-6

// moveEpsilon is the squared position change below which Update reports no motion.
const moveEpsilon = 1e-6

// OrbitOptions configures OrbitControls.
type OrbitOptions struct {
	EnableDamping bool
	DampingFactor float64
	RotateSpeed   float64
	ZoomSpeed     float64
	MinDistance   float64
	MaxDistance   float64
	MinPolar      float64
	MaxPolar      float64
}

// DefaultOrbitOptions returns damping-enabled options.
func DefaultOrbitOptions() OrbitOptions {
	return OrbitOptions{
		EnableDamping: true,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		MinDistance:   0,
		MaxDistance:   math.Inf(1),
		MinPolar:      0,
		MaxPolar:      math.Pi,
	}
}

// OrbitControls rotates, dollies and pans a camera around its target.
// Input accumulates into pending deltas; Update applies them, with inertia
// when damping is enabled, and must be called once per frame.
type OrbitControls struct {
	cam  *Perspective
	opts OrbitOptions

	deltaTheta float64
	deltaPhi   float64
	scale      float64
	panOffset  r3.Vec
}

// NewOrbitControls attaches controls to cam.
func NewOrbitControls(cam *Perspective, opts OrbitOptions) *OrbitControls {
	if opts.MaxDistance <= 0 {
		opts.MaxDistance = math.Inf(1)
	}
	if opts.MaxPolar <= 0 {
		opts.MaxPolar = math.Pi
	}
	return &OrbitControls{cam: cam, opts: opts, scale: 1}
}

// Camera returns the controlled camera.
func (o *OrbitControls) Camera() *Perspective {
	return o.cam
}

// RotateLeft queues an azimuthal rotation in radians.
func (o *OrbitControls) RotateLeft(angle float64) {
	o.deltaTheta -= angle
}

// RotateUp queues a polar rotation in radians.
func (o *OrbitControls) RotateUp(angle float64) {
	o.deltaPhi -= angle
}

// Drag converts a pointer drag in pixels to rotation. A drag across the full
// viewport height turns one full revolution.
func (o *OrbitControls) Drag(dx, dy, viewportHeight float64) {
	if viewportHeight <= 0 {
		return
	}
	o.RotateLeft(2 * math.Pi * dx / viewportHeight * o.opts.RotateSpeed)
	o.RotateUp(2 * math.Pi * dy / viewportHeight * o.opts.RotateSpeed)
}

// Wheel dollies toward the target for positive movement, away for negative.
func (o *OrbitControls) Wheel(move float64) {
	zoom := math.Pow(0.95, o.opts.ZoomSpeed)
	switch {
	case move > 0:
		o.scale *= zoom
	case move < 0:
		o.scale /= zoom
	}
}

// Pan queues a screen-space pan of dx, dy pixels.
func (o *OrbitControls) Pan(dx, dy, viewportHeight float64) {
	if viewportHeight <= 0 {
		return
	}
	offset := r3.Sub(o.cam.Position, o.cam.Target)
	targetDistance := r3.Norm(offset) * math.Tan(o.cam.FOV*math.Pi/360)

	forward := r3.Unit(r3.Scale(-1, offset))
	right := r3.Unit(r3.Cross(forward, o.cam.Up))
	up := r3.Cross(right, forward)

	left := r3.Scale(-2*dx*targetDistance/viewportHeight, right)
	upward := r3.Scale(2*dy*targetDistance/viewportHeight, up)
	o.panOffset = r3.Add(o.panOffset, r3.Add(left, upward))
}

// Update applies pending input to the camera and reports whether it moved.
func (o *OrbitControls) Update() bool {
	cam := o.cam
	before := cam.Position

	offset := r3.Sub(cam.Position, cam.Target)
	radius := r3.Norm(offset)
	theta := math.Atan2(offset.X, offset.Z)
	phi := 0.0
	if radius > 0 {
		phi = math.Acos(clamp(offset.Y/radius, -1, 1))
	}

	if o.opts.EnableDamping {
		theta += o.deltaTheta * o.opts.DampingFactor
		phi += o.deltaPhi * o.opts.DampingFactor
	} else {
		theta += o.deltaTheta
		phi += o.deltaPhi
	}

	phi = clamp(phi, o.opts.MinPolar, o.opts.MaxPolar)
	phi = clamp(phi, polarEpsilon, math.Pi-polarEpsilon)

	radius = clamp(radius*o.scale, o.opts.MinDistance, o.opts.MaxDistance)

	if o.opts.EnableDamping {
		cam.Target = r3.Add(cam.Target, r3.Scale(o.opts.DampingFactor, o.panOffset))
	} else {
		cam.Target = r3.Add(cam.Target, o.panOffset)
	}

	sinPhi := math.Sin(phi)
	offset = r3.Vec{
		X: radius * sinPhi * math.Sin(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Cos(theta),
	}
	cam.Position = r3.Add(cam.Target, offset)

	if o.opts.EnableDamping {
		decay := 1 - o.opts.DampingFactor
		o.deltaTheta *= decay
		o.deltaPhi *= decay
		o.panOffset = r3.Scale(decay, o.panOffset)
	} else {
		o.deltaTheta = 0
		o.deltaPhi = 0
		o.panOffset = r3.Vec{}
	}
	o.scale = 1

	return r3.Norm2(r3.Sub(cam.Position, before)) > moveEpsilon
}
