package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report on the terminal. With -plain, or
// when rendering fails, the raw markdown is printed instead.
func printMarkdown(markdown string) {
	if *plain {
		fmt.Print(markdown)
		return
	}
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
