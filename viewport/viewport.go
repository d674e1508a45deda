// Package viewport propagates window size changes to the camera projection
// and the render surface.
package viewport

// MaxPixelRatio caps the render scale to bound fragment shader cost.
const MaxPixelRatio = 2.0

// Size is a viewport size in window pixels.
type Size struct {
	Width, Height int
}

// Aspect returns width / height.
func (s Size) Aspect() float64 {
	return float64(s.Width) / float64(s.Height)
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Surface is the render output that follows the viewport.
type Surface interface {
	SetSize(width, height int)
	SetPixelRatio(ratio float64)
}

// Projector is a camera whose projection depends on the aspect ratio.
type Projector interface {
	SetAspect(aspect float64)
}

// ClampPixelRatio returns min(dpr, max). Non-positive inputs count as 1.
func ClampPixelRatio(dpr, max float64) float64 {
	if max <= 0 {
		max = MaxPixelRatio
	}
	if dpr <= 0 {
		dpr = 1
	}
	if dpr > max {
		return max
	}
	return dpr
}

// Handler applies viewport changes.
type Handler struct {
	camera   Projector
	surface  Surface
	maxRatio float64

	size  Size
	ratio float64
}

// NewHandler creates a handler. maxRatio <= 0 uses MaxPixelRatio.
func NewHandler(camera Projector, surface Surface, maxRatio float64) *Handler {
	if maxRatio <= 0 {
		maxRatio = MaxPixelRatio
	}
	return &Handler{camera: camera, surface: surface, maxRatio: maxRatio}
}

// Apply updates camera aspect, surface size and pixel ratio for a new
// viewport. Invalid sizes (e.g. a minimized window) are ignored. Returns
// false when nothing changed.
func (h *Handler) Apply(size Size, devicePixelRatio float64) bool {
	if !size.Valid() {
		return false
	}
	ratio := ClampPixelRatio(devicePixelRatio, h.maxRatio)
	if size == h.size && ratio == h.ratio {
		return false
	}

	h.size = size
	h.ratio = ratio

	if h.camera != nil {
		h.camera.SetAspect(size.Aspect())
	}
	if h.surface != nil {
		h.surface.SetSize(size.Width, size.Height)
		h.surface.SetPixelRatio(ratio)
	}
	return true
}

// Size returns the last applied size.
func (h *Handler) Size() Size {
	return h.size
}

// PixelRatio returns the last applied (clamped) pixel ratio.
func (h *Handler) PixelRatio() float64 {
	return h.ratio
}
