package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles plain text and box drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawLabel draws a control label vertically centred in a row.
func (r *Renderer) DrawLabel(x, y int32, text string) {
	rl.DrawText(fit(text, r.Theme.LabelWidth-4, r.Theme.FontSize), x, y+(r.Theme.RowHeight-r.Theme.FontSize)/2, r.Theme.FontSize, r.Theme.LabelColor)
}

// DrawValue draws a value right-aligned within width.
func (r *Renderer) DrawValue(x, y, width int32, text string) {
	w := rl.MeasureText(text, r.Theme.FontSize)
	rl.DrawText(text, x+width-w, y+(r.Theme.RowHeight-r.Theme.FontSize)/2, r.Theme.FontSize, r.Theme.ValueColor)
}

// DrawLabelValue draws a label and value on the same line and returns the next Y.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.LabelColor)
	return y + r.Theme.FontSize + 4
}

// fit truncates text with an ellipsis so it renders within width pixels.
func fit(text string, width, fontSize int32) string {
	if rl.MeasureText(text, fontSize) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		s := string(runes) + "..."
		if rl.MeasureText(s, fontSize) <= width {
			return s
		}
	}
	return ""
}
