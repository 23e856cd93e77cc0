package main

import (
	"fmt"
	"os"

	"github.com/kilianp07/kitchen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kitchen:", err)
		os.Exit(1)
	}
}
