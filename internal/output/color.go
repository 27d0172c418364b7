// Package output provides styled terminal rendering for the pathkit command.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	ColorPrimary = lipgloss.Color("#64b5f6")
	ColorOK      = lipgloss.Color("#66bb6a")
	ColorInvalid = lipgloss.Color("#ef5350")
	ColorMuted   = lipgloss.Color("#888888")
)

var (
	// StyleHeader is used for table headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleOK marks paths that passed the absoluteness check.
	StyleOK = lipgloss.NewStyle().
		Foreground(ColorOK)

	// StyleInvalid marks paths that failed it.
	StyleInvalid = lipgloss.NewStyle().
			Foreground(ColorInvalid)

	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

var noColor bool

// SetNoColor disables or enables color output globally.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleOK = plain
		StyleInvalid = plain
		StyleMuted = plain
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// IsTerminal reports whether w is a terminal. Anything that is not an
// *os.File is treated as a pipe.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// AutoColor disables color unless w is a terminal.
func AutoColor(w io.Writer) {
	if !IsTerminal(w) {
		SetNoColor(true)
	}
}
