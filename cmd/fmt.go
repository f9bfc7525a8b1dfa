package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// printMarkdown renders markdown to the terminal. The FOLIO_COLOR setting
// picks the style; "off" prints the raw markdown, which is also the
// fallback when rendering fails.
func printMarkdown(md string) {
	var opts []glamour.TermRendererOption
	switch config().Color {
	case "off":
		fmt.Print(md)
		return
	case "dark":
		opts = append(opts, glamour.WithStandardStyle(styles.DarkStyle))
	case "light":
		opts = append(opts, glamour.WithStandardStyle(styles.LightStyle))
	default:
		opts = append(opts, glamour.WithAutoStyle())
	}
	opts = append(opts, glamour.WithWordWrap(0))

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Fprint(os.Stdout, out)
}
