package cli

import (
	"os"

	"golang.org/x/term"

	"github.com/vijay-prabhu/portalfit/internal/filter"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorGray   = "\033[90m"
)

// Terminal provides terminal-aware output utilities
type Terminal struct {
	IsTerminal bool
	UseColor   bool
}

// NewTerminal creates a new Terminal instance. NO_COLOR disables color even
// on a terminal.
func NewTerminal() *Terminal {
	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Terminal{
		IsTerminal: isTerminal,
		UseColor:   isTerminal && !noColor,
	}
}

// Color wraps text in ANSI color codes (terminal only)
func (t *Terminal) Color(color, text string) string {
	if !t.UseColor {
		return text
	}
	return color + text + ColorReset
}

// GradeColor returns the color for a stat grade
func GradeColor(g filter.Grade) string {
	switch g {
	case filter.GradeHigh:
		return ColorGreen
	case filter.GradeMid:
		return ColorYellow
	case filter.GradeLow:
		return ColorRed
	default:
		return ""
	}
}

// GradeStyler colors graded table cells. It satisfies output.Styler.
func (t *Terminal) GradeStyler(g filter.Grade, text string) string {
	color := GradeColor(g)
	if color == "" {
		return text
	}
	return t.Color(color, text)
}
