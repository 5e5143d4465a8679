package core

// Color is a terminal color for a screen cell. Values are whatever lipgloss
// accepts: ANSI 256 codes ("82") or hex strings ("#43a047"), so level colors
// from the tuning table flow straight through to the renderer. The empty
// string means the terminal default.
type Color string

// Fixed colors for HUD and world furniture.
const (
	ColorDefault Color = ""
	ColorRed     Color = "1"
	ColorGreen   Color = "2"
	ColorYellow  Color = "3"
	ColorBlue    Color = "4"
	ColorMagenta Color = "5"
	ColorCyan    Color = "6"
	ColorWhite   Color = "7"
	ColorGold    Color = "220"
	ColorOrange  Color = "208"
	ColorGray    Color = "245"
	ColorDimGray Color = "238"
)
