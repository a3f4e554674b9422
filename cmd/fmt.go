package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
)

var plain = flag.Bool("plain", false, "Print reports as raw markdown instead of rendering them")

// printMarkdown renders a markdown report for the terminal, falling back to
// the raw markdown when rendering is not possible.
func printMarkdown(md string) {
	if *plain {
		fmt.Println(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
