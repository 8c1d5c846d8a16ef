// Command docgen generates the configuration reference from the built-in
// defaults. Output is written to docs/config-reference.md.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/colonyops/toast/internal/commands"
	"github.com/colonyops/toast/internal/core/config"
	"github.com/colonyops/toast/internal/core/styles"
)

func main() {
	md, err := render()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/config-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating %s: %v\n", filepath.Dir(outPath), err)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}

func render() (string, error) {
	defaults, err := config.DefaultConfig().YAML()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# Configuration reference\n\n")
	b.WriteString("<!-- generated by cmd/docgen; do not edit -->\n\n")
	fmt.Fprintf(&b, "toast reads `%s` unless `--config` or `TOAST_CONFIG` points elsewhere.\n", displayPath(commands.DefaultConfigPath()))
	b.WriteString("A missing file means defaults. Run `toast config validate` after editing.\n\n")

	b.WriteString("## Defaults\n\n```yaml\n")
	b.Write(defaults)
	b.WriteString("```\n\n")

	b.WriteString("## Keys\n\n")
	b.WriteString("| Key | Rule | Meaning |\n|-----|------|---------|\n")
	for _, row := range [][3]string{
		{"toast.duration", "> 0", "visible lifetime of a toast when the caller passes none"},
		{"toast.entrance", ">= 0", "entrance stage before the countdown starts; 0 disables it"},
		{"toast.frame_interval", ">= 10ms", "redraw cadence of the progress line"},
		{"toast.width", "20-200", "toast width in cells"},
		{"toast.position", "top, bottom", "screen edge the stack grows from"},
		{"tui.theme", "see below", "color theme"},
	} {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", row[0], row[1], row[2])
	}

	b.WriteString("\n## Themes\n\n")
	for _, name := range styles.ThemeNames() {
		fmt.Fprintf(&b, "- `%s`\n", name)
	}

	return b.String(), nil
}

// displayPath shortens the home directory to ~ so the output is stable
// across machines.
func displayPath(p string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	if rest, ok := strings.CutPrefix(p, home); ok {
		return "~" + rest
	}
	return p
}
