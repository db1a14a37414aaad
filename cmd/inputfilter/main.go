package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/inputfilter/cmd/inputfilter/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		var exit *cmd.ExitError
		if errors.As(err, &exit) {
			if exit.Err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exit.Err)
			}
			os.Exit(exit.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(cmd.ExitConfig)
	}
}
