// Command reveal inspects mask configurations and renders JSON or YAML
// documents as trees.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/reveal/cmd/reveal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
