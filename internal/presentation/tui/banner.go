package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/knobs/pkg/domain"
	"github.com/muesli/termenv"
)

// PrintBanner outputs the knobs banner with its version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{" _               _         ", "#818cf8"},
		{"| | ___ __   ___ | |__  ___ ", "#a78bfa"},
		{"| |/ / '_ \\ / _ \\| '_ \\/ __|", "#c084fc"},
		{"|   <| | | | (_) | |_) \\__ \\", "#e879f9"},
		{"|_|\\_\\_| |_|\\___/|_.__/|___/", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}

// ColorOutcome highlights an assignment outcome: green when applied, yellow otherwise.
func ColorOutcome(o domain.Outcome) string {
	p := termenv.ColorProfile()
	color := "#facc15"
	if o == domain.OutcomeApplied {
		color = "#4ade80"
	}
	return termenv.String(string(o)).Foreground(p.Color(color)).String()
}
