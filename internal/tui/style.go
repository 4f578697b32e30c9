package tui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles renders console text for one writer
type Styles struct {
	plain    bool
	errStyle lipgloss.Style
	okStyle  lipgloss.Style
}

// NewStyles creates styles bound to w. Output is left untouched unless w is a terminal.
func NewStyles(w io.Writer) *Styles {
	renderer := lipgloss.NewRenderer(w)
	plain := !IsTerminal(w)
	if plain {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return newStyles(renderer, plain)
}

func newStyles(renderer *lipgloss.Renderer, plain bool) *Styles {
	return &Styles{
		plain:    plain,
		errStyle: renderer.NewStyle().Foreground(lipgloss.Color("1")),
		okStyle:  renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
}

// render styles each line on its own so lipgloss does not pad short lines
// of captured output to the width of the longest one.
func (s *Styles) render(style lipgloss.Style, text string) string {
	if s.plain || text == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Error colors text red
func (s *Styles) Error(text string) string {
	return s.render(s.errStyle, text)
}

// Success colors text green and bold
func (s *Styles) Success(text string) string {
	return s.render(s.okStyle, text)
}

// IsTerminal reports whether w is a terminal file
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsTTY returns true if we can use a TTY for interactive prompts
func IsTTY() bool {
	if !IsTerminal(os.Stdin) || !IsTerminal(os.Stdout) {
		return false
	}
	// Also try to open /dev/tty to verify it's actually available
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
