// Package uniforms holds the named, typed shader parameters shared between the
// debug panel, the scene material, and the render loop.
package uniforms

import (
	"fmt"
	"math"
)

// Kind is the type tag of a uniform. It never changes for a given name.
type Kind int

const (
	KindScalar Kind = iota
	KindVec2
	KindColor
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVec2:
		return "vec2"
	case KindColor:
		return "color"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Axis selects a component of a Vec2.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Vec2 is a two-component vector.
type Vec2 struct {
	X, Y float32
}

// Value is a tagged union of the supported uniform types.
// Only the field matching Kind is meaningful.
type Value struct {
	Kind   Kind
	Scalar float32
	Vec2   Vec2
	Color  Color
}

// ScalarValue wraps a float.
func ScalarValue(v float32) Value {
	return Value{Kind: KindScalar, Scalar: v}
}

// Vec2Value wraps a 2-vector.
func Vec2Value(x, y float32) Value {
	return Value{Kind: KindVec2, Vec2: Vec2{X: x, Y: y}}
}

// ColorValue wraps a color.
func ColorValue(c Color) Value {
	return Value{Kind: KindColor, Color: c}
}

// Spec declares a uniform: its name, default, and optional numeric range.
type Spec struct {
	Name    string
	Default Value

	// Range applies to scalars and to each component of a Vec2.
	Ranged bool
	Min    float32
	Max    float32
	Step   float32
}

type entry struct {
	spec  Spec
	value Value
}

// Store maps uniform names to typed values.
// It is owned by the application and shared by pointer; it is not safe for
// concurrent use, all access happens on the render loop thread.
type Store struct {
	entries map[string]*entry
	order   []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

// Define registers a uniform with its default value.
func (s *Store) Define(spec Spec) error {
	if spec.Name == "" {
		return fmt.Errorf("uniform name is empty")
	}
	if _, exists := s.entries[spec.Name]; exists {
		return fmt.Errorf("uniform %q already defined", spec.Name)
	}
	if spec.Ranged && spec.Min > spec.Max {
		return fmt.Errorf("uniform %q: min %g > max %g", spec.Name, spec.Min, spec.Max)
	}
	s.entries[spec.Name] = &entry{spec: spec, value: clampValue(spec, spec.Default)}
	s.order = append(s.order, spec.Name)
	return nil
}

// Get returns the current value of a uniform.
func (s *Store) Get(name string) (Value, bool) {
	e, ok := s.entries[name]
	if !ok {
		return Value{}, false
	}
	return e.value, true
}

// Kind returns the type tag of a uniform.
func (s *Store) Kind(name string) (Kind, bool) {
	e, ok := s.entries[name]
	if !ok {
		return 0, false
	}
	return e.spec.Default.Kind, true
}

// Set writes a value. Unknown names, kind mismatches and NaN components are
// ignored and report false; numeric values are clamped to the declared range.
// Infinities are only accepted by ranged uniforms, where they clamp.
func (s *Store) Set(name string, v Value) bool {
	e, ok := s.entries[name]
	if !ok || e.spec.Default.Kind != v.Kind {
		return false
	}
	if !acceptable(v, e.spec.Ranged) {
		return false
	}
	e.value = clampValue(e.spec, v)
	return true
}

// SetScalar sets a scalar uniform.
func (s *Store) SetScalar(name string, v float32) bool {
	return s.Set(name, ScalarValue(v))
}

// SetVec2Component sets one component of a Vec2 uniform.
func (s *Store) SetVec2Component(name string, axis Axis, v float32) bool {
	cur, ok := s.Get(name)
	if !ok || cur.Kind != KindVec2 {
		return false
	}
	switch axis {
	case AxisX:
		cur.Vec2.X = v
	case AxisY:
		cur.Vec2.Y = v
	default:
		return false
	}
	return s.Set(name, cur)
}

// SetColor sets a color uniform.
func (s *Store) SetColor(name string, c Color) bool {
	return s.Set(name, ColorValue(c))
}

// Scalar returns a scalar uniform, or 0 if absent or of another kind.
func (s *Store) Scalar(name string) float32 {
	v, ok := s.Get(name)
	if !ok || v.Kind != KindScalar {
		return 0
	}
	return v.Scalar
}

// Vec2 returns a Vec2 uniform, or the zero vector.
func (s *Store) Vec2(name string) Vec2 {
	v, ok := s.Get(name)
	if !ok || v.Kind != KindVec2 {
		return Vec2{}
	}
	return v.Vec2
}

// Color returns a color uniform, or black.
func (s *Store) Color(name string) Color {
	v, ok := s.Get(name)
	if !ok || v.Kind != KindColor {
		return Color{}
	}
	return v.Color
}

// Names returns uniform names in definition order.
func (s *Store) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Len returns the number of defined uniforms.
func (s *Store) Len() int {
	return len(s.order)
}

// Reset restores every uniform to its default.
func (s *Store) Reset() {
	for _, e := range s.entries {
		e.value = clampValue(e.spec, e.spec.Default)
	}
}

// Snapshot copies all current values.
func (s *Store) Snapshot() map[string]Value {
	snap := make(map[string]Value, len(s.entries))
	for name, e := range s.entries {
		snap[name] = e.value
	}
	return snap
}

// Each calls fn for every uniform in definition order.
func (s *Store) Each(fn func(name string, v Value)) {
	for _, name := range s.order {
		fn(name, s.entries[name].value)
	}
}

func clampValue(spec Spec, v Value) Value {
	if !spec.Ranged {
		return v
	}
	switch v.Kind {
	case KindScalar:
		v.Scalar = clamp(v.Scalar, spec.Min, spec.Max)
	case KindVec2:
		v.Vec2.X = clamp(v.Vec2.X, spec.Min, spec.Max)
		v.Vec2.Y = clamp(v.Vec2.Y, spec.Min, spec.Max)
	}
	return v
}

func acceptable(v Value, ranged bool) bool {
	switch v.Kind {
	case KindScalar:
		return usable(v.Scalar, ranged)
	case KindVec2:
		return usable(v.Vec2.X, ranged) && usable(v.Vec2.Y, ranged)
	case KindColor:
		return usable(v.Color.R, false) && usable(v.Color.G, false) && usable(v.Color.B, false)
	}
	return false
}

func usable(x float32, ranged bool) bool {
	f := float64(x)
	if math.IsNaN(f) {
		return false
	}
	return ranged || !math.IsInf(f, 0)
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
