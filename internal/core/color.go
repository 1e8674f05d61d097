package core

// Color is an opaque display token for a drawable entity or screen cell.
// Tokens are hex strings ("#79D65A") or CSS color names; the platform layer
// decides how to show them. The empty token means the terminal default.
type Color string

// ColorDefault leaves the cell in the terminal's default color.
const ColorDefault Color = ""

// Palette colors used by the default configuration.
const (
	ColorPlayer  Color = "#79D65A"
	ColorBullet  Color = "#F1226A"
	ColorIndigo  Color = "#5554A2"
	ColorRose    Color = "#E31E70"
	ColorTeal    Color = "#3E889D"
	ColorViolet  Color = "#6231A4"
	ColorPurple  Color = "#87049E"
	ColorHUD     Color = "#AAAAAA"
	ColorOutcome Color = "#FFFFFF"
)
