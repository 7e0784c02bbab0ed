package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each color to a terminal style.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}
