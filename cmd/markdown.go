package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to the terminal. When rendering fails the
// raw markdown is still printed; a report beats a pretty error.
func printMarkdown(md, style string) {
	if style == "" {
		style = "auto"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
	_ = os.Stdout.Sync()
}
