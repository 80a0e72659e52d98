package main

import (
	"os"

	"github.com/resourcehub/hubctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
