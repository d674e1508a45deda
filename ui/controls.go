package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/panel"
	"github.com/pthm-cable/ragingsea/uniforms"
)

// PanelView draws a panel.Panel anchored to the top-right corner.
type PanelView struct {
	panel    *panel.Panel
	renderer *Renderer
	margin   int32
	bounds   rl.Rectangle
}

// NewPanelView creates a view for p.
func NewPanelView(p *panel.Panel) *PanelView {
	return &PanelView{panel: p, renderer: NewRenderer()}
}

// Contains reports whether a screen point lies on the panel as last drawn.
// Pointer input over the panel should not reach the orbit controls.
func (v *PanelView) Contains(pt rl.Vector2) bool {
	return rl.CheckCollisionPointRec(pt, v.bounds)
}

// height computes the panel height for the current open/collapsed state.
func (v *PanelView) height() int32 {
	t := v.renderer.Theme
	h := t.HeaderHeight
	if v.panel.Collapsed {
		return h
	}
	h += t.HeaderHeight * int32(len(v.panel.Folders))
	v.panel.Each(func(f *panel.Folder, c panel.Control) {
		if f == nil || f.Open {
			h += v.rowHeight(c)
		}
	})
	return h + t.Padding
}

func (v *PanelView) rowHeight(c panel.Control) int32 {
	if _, ok := c.(*panel.ColorPicker); ok {
		return v.renderer.Theme.PickerHeight + v.renderer.Theme.Padding
	}
	return v.renderer.Theme.RowHeight
}

// Draw renders the panel and applies any widget changes. Widgets are
// disabled while the panel is locked.
func (v *PanelView) Draw() {
	if v.panel.Locked {
		gui.Lock()
		defer gui.Unlock()
	}
	t := v.renderer.Theme
	width := int32(v.panel.Width)
	x := int32(rl.GetScreenWidth()) - width - v.margin
	y := v.margin
	height := v.height()
	v.bounds = rl.NewRectangle(float32(x), float32(y), float32(width), float32(height))

	if !v.panel.Collapsed {
		v.renderer.DrawPanel(x, y, width, height)
	}

	title := v.panel.Title
	if v.panel.Collapsed {
		title = "Open " + title
	}
	if gui.Button(rl.NewRectangle(float32(x), float32(y), float32(width), float32(t.HeaderHeight)), title) {
		v.panel.Toggle()
		return
	}
	if v.panel.Collapsed {
		return
	}
	y += t.HeaderHeight

	for _, f := range v.panel.Folders {
		y = v.drawFolder(f, x, y, width)
	}
	for _, c := range v.panel.Controls {
		y = v.drawControl(c, x+t.Padding, y, width-2*t.Padding)
	}
}

func (v *PanelView) drawFolder(f *panel.Folder, x, y, width int32) int32 {
	t := v.renderer.Theme
	marker := "-"
	if !f.Open {
		marker = "+"
	}
	rl.DrawRectangle(x, y, width, t.HeaderHeight, t.FolderHeader)
	if gui.Button(rl.NewRectangle(float32(x), float32(y), float32(width), float32(t.HeaderHeight)),
		fmt.Sprintf("%s %s", marker, f.Title)) {
		f.Open = !f.Open
	}
	y += t.HeaderHeight
	if !f.Open {
		return y
	}
	for _, c := range f.Controls {
		y = v.drawControl(c, x+t.Padding, y, width-2*t.Padding)
	}
	return y
}

func (v *PanelView) drawControl(c panel.Control, x, y, width int32) int32 {
	t := v.renderer.Theme
	r := v.renderer

	switch c := c.(type) {
	case *panel.Slider:
		r.DrawLabel(x, y, c.Label())
		barX := x + t.LabelWidth
		barW := width - t.LabelWidth - t.ValueWidth - t.Padding
		bounds := rl.NewRectangle(float32(barX), float32(y+3), float32(barW), float32(t.RowHeight-6))
		cur := c.Value()
		next := gui.SliderBar(bounds, "", "", cur, c.Min, c.Max)
		if next != cur {
			v.panel.SetSlider(c.ID(), next)
		}
		r.DrawValue(barX+barW, y, t.ValueWidth+t.Padding, formatStep(c.Value(), c.Step))
		return y + t.RowHeight

	case *panel.ColorPicker:
		r.DrawLabel(x, y, c.Label())
		pickerX := x + t.LabelWidth
		// raygui reserves room to the right of the picker for the hue bar
		pickerW := width - t.LabelWidth - 30
		bounds := rl.NewRectangle(float32(pickerX), float32(y), float32(pickerW), float32(t.PickerHeight))
		cur := toRaylibColor(c.Value())
		next := gui.ColorPicker(bounds, "", cur)
		if next.R != cur.R || next.G != cur.G || next.B != cur.B {
			v.panel.SetColor(c.ID(), uniforms.ColorFromRGB8(next.R, next.G, next.B))
		}
		r.DrawValue(x, y+t.RowHeight, t.LabelWidth-4, c.State)
		return y + t.PickerHeight + t.Padding

	case *panel.Toggle:
		size := float32(t.RowHeight - 8)
		bounds := rl.NewRectangle(float32(x+t.LabelWidth), float32(y+4), size, size)
		r.DrawLabel(x, y, c.Label())
		cur := c.Value()
		if next := gui.CheckBox(bounds, "", cur); next != cur {
			v.panel.Flip(c.ID())
		}
		return y + t.RowHeight
	}
	return y
}

func toRaylibColor(c uniforms.Color) rl.Color {
	r, g, b := c.RGB8()
	return rl.Color{R: r, G: g, B: b, A: 255}
}

// formatStep prints v with as many decimals as the step needs.
func formatStep(v, step float32) string {
	switch {
	case step >= 1:
		return fmt.Sprintf("%.0f", v)
	case step >= 0.1:
		return fmt.Sprintf("%.1f", v)
	case step >= 0.01:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}
