// Package ui draws the debug panel and HUD with raylib and raygui. Layout
// and state live in the panel package; this package only renders them and
// routes widget changes back.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	FolderHeader  rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	HintColor     rl.Color
	MessageColor  rl.Color
	Padding       int32
	RowHeight     int32
	HeaderHeight  int32
	PickerHeight  int32
	LabelWidth    int32
	ValueWidth    int32
	FontSize      int32
	TitleFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 26, G: 26, B: 26, A: 235},
		PanelBorder:   rl.Color{R: 60, G: 60, B: 60, A: 255},
		FolderHeader:  rl.Color{R: 17, G: 17, B: 17, A: 255},
		LabelColor:    rl.LightGray,
		ValueColor:    rl.Color{R: 47, G: 161, B: 214, A: 255},
		HintColor:     rl.Gray,
		MessageColor:  rl.Yellow,
		Padding:       6,
		RowHeight:     22,
		HeaderHeight:  20,
		PickerHeight:  96,
		LabelWidth:    120,
		ValueWidth:    46,
		FontSize:      12,
		TitleFontSize: 14,
	}
}
