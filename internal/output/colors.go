package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// Colors holds the color functions for different output types
type Colors struct {
	Time    func(format string, a ...interface{}) string
	Soon    func(format string, a ...interface{}) string
	Minutes func(format string, a ...interface{}) string
	Line    func(format string, a ...interface{}) string
	Code    func(format string, a ...interface{}) string
	Dest    func(format string, a ...interface{}) string
	Issue   func(format string, a ...interface{}) string
	Night   func(format string, a ...interface{}) string
	Header  func(format string, a ...interface{}) string
	Muted   func(format string, a ...interface{}) string
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return color.New().Sprintf(format, a...)
		}
		return &Colors{
			Time:    noColor,
			Soon:    noColor,
			Minutes: noColor,
			Line:    noColor,
			Code:    noColor,
			Dest:    noColor,
			Issue:   noColor,
			Night:   noColor,
			Header:  noColor,
			Muted:   noColor,
		}
	}

	return &Colors{
		Time:    color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Soon:    color.New(color.FgRed, color.Bold).SprintfFunc(),
		Minutes: color.New(color.FgGreen).SprintfFunc(),
		Line:    color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Code:    color.New(color.FgMagenta).SprintfFunc(),
		Dest:    color.New(color.FgWhite).SprintfFunc(),
		Issue:   color.New(color.FgYellow).SprintfFunc(),
		Night:   color.New(color.FgBlue).SprintfFunc(),
		Header:  color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Muted:   color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// FormatMinutes formats minutes until a passage (fixed 5-char width).
// Negative values mean no time is known.
func (c *Colors) FormatMinutes(minutes int) string {
	switch {
	case minutes < 0:
		return c.Muted("   --")
	case minutes == 0:
		return c.Soon("  now")
	case minutes <= 2:
		return c.Soon("%3d'", minutes) + " "
	default:
		return c.Minutes("%3d'", minutes) + " "
	}
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
