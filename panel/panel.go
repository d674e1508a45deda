// Package panel declares the debug panel: folders of sliders, color pickers and
// toggles bound to uniform store entries. It holds no drawing code; the ui
// package renders a Panel and feeds interactions back through Set* methods.
package panel

import (
	"math"

	"github.com/pthm-cable/ragingsea/uniforms"
)

// Control is a single bound widget.
type Control interface {
	ID() string
	Label() string
}

// Slider binds a numeric range to a scalar uniform or one axis of a vec2 uniform.
type Slider struct {
	id, label string
	store     *uniforms.Store
	Uniform   string
	Axis      uniforms.Axis
	Component bool // true when bound to one axis of a vec2
	Min, Max  float32
	Step      float32
}

func (s *Slider) ID() string    { return s.id }
func (s *Slider) Label() string { return s.label }

// Value reads the bound uniform.
func (s *Slider) Value() float32 {
	if s.Component {
		v := s.store.Vec2(s.Uniform)
		if s.Axis == uniforms.AxisY {
			return v.Y
		}
		return v.X
	}
	return s.store.Scalar(s.Uniform)
}

// Set snaps v to the slider step, clamps it, and writes the uniform.
func (s *Slider) Set(v float32) bool {
	v = s.Quantize(v)
	if s.Component {
		return s.store.SetVec2Component(s.Uniform, s.Axis, v)
	}
	return s.store.SetScalar(s.Uniform, v)
}

// Quantize snaps v to the nearest step from Min and clamps to [Min, Max].
func (s *Slider) Quantize(v float32) float32 {
	if s.Step > 0 {
		n := math.Round(float64(v-s.Min) / float64(s.Step))
		v = s.Min + float32(n)*s.Step
	}
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	return v
}

// ColorPicker edits a hex color state and copies it into a color uniform on change.
type ColorPicker struct {
	id, label string
	Uniform   string
	State     string // #RRGGBB
	OnChange  func(state string)
}

func (c *ColorPicker) ID() string    { return c.id }
func (c *ColorPicker) Label() string { return c.label }

// Value returns the picker state as a color.
func (c *ColorPicker) Value() uniforms.Color {
	col, err := uniforms.ParseHex(c.State)
	if err != nil {
		return uniforms.Color{}
	}
	return col
}

// Set updates the state and fires OnChange.
func (c *ColorPicker) Set(col uniforms.Color) {
	c.State = col.Hex()
	if c.OnChange != nil {
		c.OnChange(c.State)
	}
}

func (c *ColorPicker) syncFrom(store *uniforms.Store) {
	c.State = store.Color(c.Uniform).Hex()
}

// Toggle binds a boolean flag.
type Toggle struct {
	id, label string
	get       func() bool
	set       func(bool)
}

func (t *Toggle) ID() string    { return t.id }
func (t *Toggle) Label() string { return t.label }

// Value returns the flag.
func (t *Toggle) Value() bool { return t.get() }

// Set writes the flag.
func (t *Toggle) Set(v bool) { t.set(v) }

// Flip inverts the flag and returns the new value.
func (t *Toggle) Flip() bool {
	v := !t.get()
	t.set(v)
	return v
}

// Folder groups controls under a collapsible header.
type Folder struct {
	Title    string
	Open     bool
	Controls []Control

	panel *Panel
}

// Panel is a floating widget of folders and root-level controls.
type Panel struct {
	Title     string
	Width     int
	Collapsed bool
	Folders   []*Folder
	Controls  []Control // root-level, drawn after folders

	// Locked panels ignore edits made through SetSlider, SetColor and Flip.
	// It is set while a pointer gesture that started off the panel is active.
	Locked bool

	store *uniforms.Store
	byID  map[string]Control
}

// New creates an empty panel bound to store.
func New(store *uniforms.Store, title string, width int, collapsed bool) *Panel {
	return &Panel{
		Title:     title,
		Width:     width,
		Collapsed: collapsed,
		store:     store,
		byID:      make(map[string]Control),
	}
}

// Toggle collapses or expands the panel.
func (p *Panel) Toggle() bool {
	p.Collapsed = !p.Collapsed
	return p.Collapsed
}

// AddFolder appends a folder. Folders start open.
func (p *Panel) AddFolder(title string) *Folder {
	f := &Folder{Title: title, Open: true, panel: p}
	p.Folders = append(p.Folders, f)
	return f
}

// AddToggle adds a root-level boolean control.
func (p *Panel) AddToggle(label string, get func() bool, set func(bool)) *Toggle {
	t := &Toggle{id: label, label: label, get: get, set: set}
	p.Controls = append(p.Controls, t)
	p.byID[t.id] = t
	return t
}

// AddSlider binds a scalar uniform.
func (f *Folder) AddSlider(uniform string, min, max, step float32, label string) *Slider {
	s := &Slider{
		id: f.Title + "/" + label, label: label, store: f.panel.store,
		Uniform: uniform, Min: min, Max: max, Step: step,
	}
	f.add(s)
	return s
}

// AddVec2Slider binds one axis of a vec2 uniform.
func (f *Folder) AddVec2Slider(uniform string, axis uniforms.Axis, min, max, step float32, label string) *Slider {
	s := f.AddSlider(uniform, min, max, step, label)
	s.Axis = axis
	s.Component = true
	return s
}

// AddColor binds a color uniform through a hex state that is copied into
// the uniform whenever the picker changes.
func (f *Folder) AddColor(uniform, label string) *ColorPicker {
	store := f.panel.store
	c := &ColorPicker{
		id:      f.Title + "/" + label,
		label:   label,
		Uniform: uniform,
		State:   store.Color(uniform).Hex(),
	}
	c.OnChange = func(state string) {
		if col, err := uniforms.ParseHex(state); err == nil {
			store.SetColor(uniform, col)
		}
	}
	f.add(c)
	return c
}

func (f *Folder) add(c Control) {
	f.Controls = append(f.Controls, c)
	f.panel.byID[c.ID()] = c
}

// Lookup finds a control by ID ("Folder/Label" or "Label" for root controls).
func (p *Panel) Lookup(id string) (Control, bool) {
	c, ok := p.byID[id]
	return c, ok
}

// SetSlider sets a slider by ID. Returns false if no such slider exists or
// the panel is locked.
func (p *Panel) SetSlider(id string, v float32) bool {
	s, ok := p.byID[id].(*Slider)
	if !ok || p.Locked {
		return false
	}
	return s.Set(v)
}

// SetColor sets a color picker by ID.
func (p *Panel) SetColor(id string, col uniforms.Color) bool {
	c, ok := p.byID[id].(*ColorPicker)
	if !ok || p.Locked {
		return false
	}
	c.Set(col)
	return true
}

// Flip inverts a toggle by ID.
func (p *Panel) Flip(id string) bool {
	t, ok := p.byID[id].(*Toggle)
	if !ok || p.Locked {
		return false
	}
	t.Flip()
	return true
}

// Sync refreshes color picker states from the store, e.g. after a reset or preset load.
func (p *Panel) Sync() {
	for _, f := range p.Folders {
		for _, c := range f.Controls {
			if cp, ok := c.(*ColorPicker); ok {
				cp.syncFrom(p.store)
			}
		}
	}
}

// Each visits every control in display order.
func (p *Panel) Each(fn func(folder *Folder, c Control)) {
	for _, f := range p.Folders {
		for _, c := range f.Controls {
			fn(f, c)
		}
	}
	for _, c := range p.Controls {
		fn(nil, c)
	}
}
