package theme

// Centralized theming for the harness UI: palette constants, semantic ttk
// styles and the rating/fps label colors shared with the summary panel.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels, cards
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#2563eb" // buttons, accents
	ColorDanger    = "#dc2626"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// Rating colors, one per band. The overlay draws the same values as RGBA; a
// change here should be mirrored there.
const (
	ColorExcellent  = "#10b981"
	ColorGood       = "#f59e0b"
	ColorAcceptable = "#f97316"
	ColorPoor       = "#ef4444"
)

// RatingColor maps a rating name (perf.Rating.String()) to its label color.
func RatingColor(rating string) string {
	switch rating {
	case "excellent":
		return ColorExcellent
	case "good":
		return ColorGood
	case "acceptable":
		return ColorAcceptable
	case "poor":
		return ColorPoor
	default:
		return ColorTextMuted
	}
}

// FPSColor maps an estimated frame rate to its label color: green at 60+,
// amber at 30+, red below.
func FPSColor(fps float64) string {
	switch {
	case fps >= 60:
		return ColorExcellent
	case fps >= 30:
		return ColorGood
	default:
		return ColorPoor
	}
}

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStatLabel     = "stat.TLabel"
)

var darkMode bool

// InitStyles (re)applies styles for the current darkMode value.
func InitStyles() { applyStyles(darkMode) }

// ToggleDark flips dark mode and reapplies styles. Returns the new mode.
func ToggleDark() bool {
	darkMode = !darkMode
	applyStyles(darkMode)
	return darkMode
}

// IsDark reports current mode.
func IsDark() bool { return darkMode }

func applyStyles(dark bool) {
	_ = ActivateTheme("azure light")
	if dark {
		App.Configure(Background("#0f172a"))
	} else {
		App.Configure(Background(ColorBg))
	}

	primary := ColorPrimary
	danger := ColorDanger
	statFg := ColorText
	statBg := ColorSurface
	if dark {
		primary = "#3b82f6"
		danger = "#ef4444"
		statFg = "#f1f5f9"
		statBg = "#1e293b"
	}
	StyleConfigure(StylePrimaryButton,
		Background(primary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleDangerButton,
		Background(danger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStatLabel,
		Foreground(statFg),
		Background(statBg),
		Padding("2p 1p"),
	)
}
