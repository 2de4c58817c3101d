package main

import (
	"os"

	"github.com/voltgrid/chargeseed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
