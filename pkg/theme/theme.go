// Package theme holds the resolved theme values the window runtime consumes.
// Computing themes from styles is left to callers; the runtime only reads
// the colors it needs to clear and paint a frame.
package theme

import "image/color"

// Brightness selects between the light and dark variants of a ThemePair.
type Brightness int

const (
	// BrightnessLight selects the light theme.
	BrightnessLight Brightness = iota
	// BrightnessDark selects the dark theme.
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorScheme is the palette a frame is painted with.
type ColorScheme struct {
	Surface   color.RGBA
	OnSurface color.RGBA
	Primary   color.RGBA
	Outline   color.RGBA
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Surface:   color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		OnSurface: color.RGBA{R: 0x1C, G: 0x1B, B: 0x1F, A: 0xFF},
		Primary:   color.RGBA{R: 0x67, G: 0x50, B: 0xA4, A: 0xFF},
		Outline:   color.RGBA{R: 0x79, G: 0x74, B: 0x7E, A: 0xFF},
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Surface:   color.RGBA{R: 0x1C, G: 0x1B, B: 0x1F, A: 0xFF},
		OnSurface: color.RGBA{R: 0xE6, G: 0xE1, B: 0xE5, A: 0xFF},
		Primary:   color.RGBA{R: 0xD0, G: 0xBC, B: 0xFF, A: 0xFF},
		Outline:   color.RGBA{R: 0x93, G: 0x8F, B: 0x99, A: 0xFF},
	}
}

// ThemeData is one resolved theme.
type ThemeData struct {
	ColorScheme ColorScheme
	Brightness  Brightness
}

// ThemePair holds a light and a dark theme plus the active selection.
type ThemePair struct {
	Light  ThemeData
	Dark   ThemeData
	Active Brightness
}

// DefaultThemePair returns the default light/dark pair with light active.
func DefaultThemePair() ThemePair {
	return ThemePair{
		Light:  ThemeData{ColorScheme: LightColorScheme(), Brightness: BrightnessLight},
		Dark:   ThemeData{ColorScheme: DarkColorScheme(), Brightness: BrightnessDark},
		Active: BrightnessLight,
	}
}

// Current returns the active theme.
func (p ThemePair) Current() ThemeData {
	if p.Active == BrightnessDark {
		return p.Dark
	}
	return p.Light
}

// WithActive returns a copy of p with the given brightness active.
func (p ThemePair) WithActive(b Brightness) ThemePair {
	p.Active = b
	return p
}
