package main

import (
	"os"

	"github.com/G3mha/genetic-programming/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
