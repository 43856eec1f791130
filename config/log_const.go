package config

const (
	LogErrorColor = "\033[31m"
	LogWarnColor  = "\033[33m"
	LogInfoColor  = "\033[32m"
	LogColorReset = "\033[0m"
)

// Color constants for logging
const (
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorPurple  = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
)

// WallColor is a named ANSI colour the terminal UI can draw walls with.
type WallColor struct {
	Name string
	Code string
}

// WallPalette is the rotation order of wall colours in the terminal UI.
var WallPalette = []WallColor{
	{Name: "White", Code: "\033[37m"},
	{Name: "Yellow", Code: ColorYellow},
	{Name: "Blue", Code: ColorBlue},
	{Name: "Red", Code: "\033[31m"},
	{Name: "Green", Code: ColorGreen},
	{Name: "Magenta", Code: ColorMagenta},
	{Name: "Cyan", Code: ColorCyan},
	{Name: "Dark", Code: "\033[90m"},
}
