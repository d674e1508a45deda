package camera

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/ragingsea/config"
)

// NewFromConfig creates the camera and its orbit controls.
func NewFromConfig(cfg config.CameraConfig, aspect float64) (*Perspective, *OrbitControls) {
	cam := NewPerspective(cfg.FOV, aspect, cfg.Near, cfg.Far)
	cam.Position = r3.Vec{X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2]}
	cam.Target = r3.Vec{X: cfg.Target[0], Y: cfg.Target[1], Z: cfg.Target[2]}

	opts := DefaultOrbitOptions()
	opts.EnableDamping = cfg.EnableDamping
	if cfg.DampingFactor > 0 {
		opts.DampingFactor = cfg.DampingFactor
	}
	if cfg.RotateSpeed > 0 {
		opts.RotateSpeed = cfg.RotateSpeed
	}
	if cfg.ZoomSpeed > 0 {
		opts.ZoomSpeed = cfg.ZoomSpeed
	}
	opts.MinDistance = cfg.MinDistance
	if cfg.MaxDistance > 0 {
		opts.MaxDistance = cfg.MaxDistance
	}

	return cam, NewOrbitControls(cam, opts)
}
