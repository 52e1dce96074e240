package main

import (
	"fmt"
	"os"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	a := newApp()
	defer a.close()

	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
