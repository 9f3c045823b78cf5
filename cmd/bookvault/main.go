// Command bookvault is an interactive inventory manager for a small
// bookstore catalog.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/bookvault/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
