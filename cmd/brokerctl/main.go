// Command brokerctl looks up Norwegian organisations from the terminal using
// the same pipeline as the broker server.
package main

import (
	"os"
)

func main() {
	// cobra prints the error; main only sets the exit code.
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
