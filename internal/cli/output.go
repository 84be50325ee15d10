package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/knobs/internal/presentation/tui"
	"github.com/aretw0/knobs/pkg/registry"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	FormatAuto     = "auto"
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// RenderParameters writes infos to w in the requested format.
// "auto" renders a markdown table on a terminal and plain text otherwise.
func RenderParameters(w io.Writer, infos []registry.Info, format string) error {
	switch format {
	case "", FormatAuto:
		if tui.IsTerminal(w) {
			return RenderParameters(w, infos, FormatMarkdown)
		}
		return RenderParameters(w, infos, FormatText)
	case FormatText:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tKIND\tVALUE\tCONSTRAINT")
		for _, info := range infos {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Name, info.Kind, tui.FormatValue(info.Value), tui.Constraint(info))
		}
		return tw.Flush()
	case FormatMarkdown:
		out, err := tui.NewRenderer()(tui.MarkdownTable(infos))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case FormatJSON, FormatYAML:
		return encode(w, infos, format)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// RenderValue writes a single value. Text output is the bare value so it can be
// captured by shell scripts.
func RenderValue(w io.Writer, value any, format string) error {
	switch format {
	case "", FormatAuto, FormatText, FormatMarkdown:
		_, err := fmt.Fprintln(w, tui.FormatValue(value))
		return err
	case FormatJSON, FormatYAML:
		return encode(w, value, format)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func encode(w io.Writer, v any, format string) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
