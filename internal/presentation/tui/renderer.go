package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/knobs/pkg/registry"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		if err != nil {
			return "", fmt.Errorf("failed to create renderer: %w", err)
		}
		return r.Render(markdown)
	}
}

// MarkdownTable renders parameters as a markdown table.
func MarkdownTable(infos []registry.Info) string {
	var b strings.Builder
	b.WriteString("| Name | Kind | Value | Constraint |\n")
	b.WriteString("|------|------|-------|------------|\n")
	for _, info := range infos {
		fmt.Fprintf(&b, "| `%s` | %s | `%s` | %s |\n",
			info.Name, info.Kind, FormatValue(info.Value), Constraint(info))
	}
	return b.String()
}

// FormatValue renders a parameter value the way it would be typed on the command line.
func FormatValue(v any) string {
	switch val := v.(type) {
	case bool:
		return registry.FormatBool(val)
	case float64:
		return registry.FormatNumeric(val)
	default:
		return fmt.Sprint(val)
	}
}

// Constraint describes the values a parameter accepts.
func Constraint(info registry.Info) string {
	switch {
	case info.Min != nil && info.Max != nil:
		s := fmt.Sprintf("[%s, %s]", registry.FormatNumeric(*info.Min), registry.FormatNumeric(*info.Max))
		if info.Step != nil && *info.Step != 0 {
			s += " step " + registry.FormatNumeric(*info.Step)
		}
		return s
	case len(info.Options) > 0:
		return strings.Join(info.Options, ", ")
	default:
		return "true, false"
	}
}
