package commands

// Escape sequences for the human-oriented command output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// verdictColor maps a resolved verdict to its display color.
func verdictColor(verdict string) string {
	switch verdict {
	case "all":
		return colorGreen
	case "some":
		return colorYellow
	case "none":
		return colorGray
	default:
		return colorReset
	}
}
