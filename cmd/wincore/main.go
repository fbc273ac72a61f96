// Command wincore inspects window configuration and runs a terminal demo
// of the window runtime.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/wincore/cmd/wincore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
