package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// TransparentTheme removes the window background so the pet floats over
// the desktop instead of sitting in a gray rectangle.
type TransparentTheme struct{}

// NewTransparentTheme creates a new transparent overlay theme
func NewTransparentTheme() fyne.Theme {
	return &TransparentTheme{}
}

// Color returns theme colors
func (t *TransparentTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0, G: 0, B: 0, A: 0}
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		// Menus and dialogs keep a readable backdrop
		if variant == theme.VariantDark {
			return color.NRGBA{R: 30, G: 30, B: 30, A: 245}
		}
		return color.NRGBA{R: 250, G: 250, B: 250, A: 245}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *TransparentTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *TransparentTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *TransparentTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
