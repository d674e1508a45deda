package uniforms

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is a linear RGB triple with channels in [0, 1].
type Color struct {
	R, G, B float32
}

// ParseHex parses "#RRGGBB" (the leading # is optional).
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return ColorFromRGB8(uint8(n>>16), uint8(n>>8), uint8(n)), nil
}

// MustParseHex is like ParseHex but panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorFromRGB8 converts 8-bit channels.
func ColorFromRGB8(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
	}
}

// RGB8 returns the color as 8-bit channels.
func (c Color) RGB8() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

// Hex formats the color as "#RRGGBB".
func (c Color) Hex() string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}
