package report

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Render styles the markdown report for the terminal using glamour,
// automatically detecting light/dark background. When plain is set, stdout
// is not a terminal, or the terminal has no color support, the markdown is
// returned untouched.
func Render(markdown string, plain bool) string {
	if plain || !isTerminal() || termenv.ColorProfile() == termenv.Ascii {
		return markdown
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

// StatusLine renders the one-line verdict printed after the report.
func StatusLine(valid bool, defects int, plain bool) string {
	if valid {
		return colorize("Union is structurally valid! ✅", "#22c55e", plain)
	}
	return colorize(fmt.Sprintf("Union has %d structural defects ❌", defects), "#ef4444", plain)
}

func colorize(s, hex string, plain bool) string {
	if plain || !isTerminal() {
		return s
	}
	p := termenv.ColorProfile()
	return termenv.String(s).Foreground(p.Color(hex)).String()
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
