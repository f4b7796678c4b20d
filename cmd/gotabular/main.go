// Command gotabular inspects numeric tables stored as two-row-header CSV.
package main

import (
	"fmt"
	"os"

	"github.com/sartorproj/gotabular/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
