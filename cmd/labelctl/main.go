// Command labelctl solves and renders moving box labels offline.
package main

import (
	"os"

	"github.com/guttosm/move-labels/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
