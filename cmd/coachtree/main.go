// SPDX-License-Identifier: MIT

// Command coachtree explores coaching mentorship lineages.
package main

import (
	"os"

	"github.com/katalvlaran/coachtree/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
