// Command progress_report prints progress reports from a player log export.
package main

import (
	"fmt"
	"os"

	"github.com/2beens/playerprogress/internal/report"
)

func main() {
	if err := report.NewRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
