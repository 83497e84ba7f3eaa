package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// appTheme tightens the default theme so the options fit above the log
type appTheme struct {
	fyne.Theme
}

// NewAppTheme creates the application theme
func NewAppTheme() fyne.Theme {
	return &appTheme{Theme: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *appTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	}
	return t.Theme.Color(name, variant)
}

// Size returns theme sizes with compact padding
func (t *appTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	}
	return t.Theme.Size(name)
}
