package main

import (
	"os"

	"github.com/meenmo/growthrate/cmd/growth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
