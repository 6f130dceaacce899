package main

import (
	"os"

	"github.com/hplt-project/OpusCleaner/internal/cli"
)

func main() {
	// Run prints its own error messages; the exit code is all that's left.
	code, _ := cli.Run(os.Args, nil)
	os.Exit(code)
}
