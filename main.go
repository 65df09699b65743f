package main

import (
	"fmt"
	"os"

	"github.com/deepoptimizer/sitecheck/cmd"
	"github.com/deepoptimizer/sitecheck/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// A failed verification has already printed its report.
		if !errors.IsVerificationFailed(err) {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		}
		os.Exit(1)
	}
}
