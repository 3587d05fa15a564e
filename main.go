package main

import (
	"os"

	"github.com/abhisek/strengthmap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
