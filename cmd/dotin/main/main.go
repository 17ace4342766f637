package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotin/cmd/dotin"
)

func main() {
	rootCmd := dotin.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, dotin.FormatError(err))
		os.Exit(1)
	}
}
