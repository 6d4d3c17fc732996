package core

// Color is a foreground color for a screen cell. The value is any color
// string lipgloss understands: an ANSI index ("2"), a 256-color index
// ("208") or a hex triplet ("#00ff00"). The empty string is the terminal
// default.
type Color string

// Predefined colors for HUD and overlay elements.
const (
	ColorDefault Color = ""
	ColorRed     Color = "1"
	ColorGreen   Color = "2"
	ColorYellow  Color = "3"
	ColorCyan    Color = "6"
	ColorWhite   Color = "7"
	ColorOrange  Color = "208"
	ColorGray    Color = "245"
)
