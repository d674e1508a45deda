package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface is an offscreen render target sized to the window times the
// pixel ratio. It is blitted to the window each frame.
type Surface struct {
	width, height int
	ratio         float64

	target rl.RenderTexture2D
	loaded bool
	dirty  bool
}

// NewSurface creates a surface. The texture is allocated on first Begin.
func NewSurface(width, height int, ratio float64) *Surface {
	return &Surface{width: width, height: height, ratio: ratio, dirty: true}
}

// SetSize sets the logical size in window pixels.
func (s *Surface) SetSize(w, h int) {
	if w != s.width || h != s.height {
		s.width, s.height = w, h
		s.dirty = true
	}
}

// SetPixelRatio sets the device pixel ratio used for the backing texture.
func (s *Surface) SetPixelRatio(r float64) {
	if r != s.ratio {
		s.ratio = r
		s.dirty = true
	}
}

// TextureSize is the backing texture size in device pixels.
func (s *Surface) TextureSize() (int32, int32) {
	r := s.ratio
	if r <= 0 {
		r = 1
	}
	w := int32(float64(s.width)*r + 0.5)
	h := int32(float64(s.height)*r + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func (s *Surface) ensure() {
	if !s.dirty && s.loaded {
		return
	}
	if s.loaded {
		rl.UnloadRenderTexture(s.target)
	}
	w, h := s.TextureSize()
	s.target = rl.LoadRenderTexture(w, h)
	s.loaded = true
	s.dirty = false
}

// Begin starts drawing into the surface and clears it.
func (s *Surface) Begin() {
	s.ensure()
	rl.BeginTextureMode(s.target)
	rl.ClearBackground(rl.Black)
}

// End stops drawing into the surface.
func (s *Surface) End() {
	rl.EndTextureMode()
}

// Blit draws the surface over the whole window.
func (s *Surface) Blit() {
	if !s.loaded {
		return
	}
	w, h := s.TextureSize()
	// Render textures are stored upside down
	src := rl.NewRectangle(0, 0, float32(w), -float32(h))
	dst := rl.NewRectangle(0, 0, float32(s.width), float32(s.height))
	rl.DrawTexturePro(s.target.Texture, src, dst, rl.Vector2{}, 0, rl.White)
}

// Capture writes the current surface contents to a PNG file.
func (s *Surface) Capture(path string) error {
	if !s.loaded {
		return fmt.Errorf("capture %s: surface not drawn yet", path)
	}
	img := rl.LoadImageFromTexture(s.target.Texture)
	defer rl.UnloadImage(img)
	rl.ImageFlipVertical(img)
	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("exporting %s failed", path)
	}
	return nil
}

// Unload frees the render texture.
func (s *Surface) Unload() {
	if s.loaded {
		rl.UnloadRenderTexture(s.target)
		s.loaded = false
	}
}
