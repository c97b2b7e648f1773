package domain

import "go.trai.ch/zerr"

// ColorSetting controls colorization of the diagnostic report.
type ColorSetting string

const (
	// ColorNever disables colors.
	ColorNever ColorSetting = "never"
	// ColorAuto enables colors only when the output is an interactive terminal.
	ColorAuto ColorSetting = "auto"
	// ColorAlways forces colors.
	ColorAlways ColorSetting = "always"
)

// ParseColorSetting validates a --color value. An empty value means auto.
func ParseColorSetting(s string) (ColorSetting, error) {
	switch ColorSetting(s) {
	case ColorNever, ColorAuto, ColorAlways:
		return ColorSetting(s), nil
	case "":
		return ColorAuto, nil
	default:
		return "", zerr.With(ErrInvalidColorSetting, "color", s)
	}
}

// Enabled resolves the setting against whether the output is a terminal.
func (c ColorSetting) Enabled(isTerminal bool) bool {
	switch c {
	case ColorAlways:
		return true
	case ColorAuto:
		return isTerminal
	default:
		return false
	}
}
