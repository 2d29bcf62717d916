package theme

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Banner returns the postcraft banner, colored when the terminal supports it.
func Banner() string {
	title := color.New(color.FgMagenta, color.Bold).SprintFunc()
	frame := color.New(color.FgCyan).SprintFunc()
	rule := color.New(color.FgYellow).SprintFunc()

	art := "" +
		frame("  ┌─┐┌─┐┌─┐┌┬┐") + "  " + title("POSTCRAFT") + "\n" +
		frame("  ├─┘│ │└─┐ │ ") + "  adapt · check · predict\n" +
		frame("  ┴  └─┘└─┘ ┴ ") + "  one draft, every platform\n" +
		rule("  ──────────────────────────────────────") + "\n"
	return art
}

// PrintBanner writes the banner to w.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, Banner())
}
