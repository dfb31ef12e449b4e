// Package main is the entry point for the newpost CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/slimblog/newpost/internal/cmd"
	oerrors "github.com/slimblog/newpost/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Usage errors are printed together with the usage text
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
