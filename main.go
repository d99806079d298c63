// ABOUTME: Entry point for the storefront CLI
// ABOUTME: Command-line and terminal UI client for the storefront shop backend

package main

import (
	"fmt"
	"os"

	"github.com/shopdemo/storefront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
