package main

import (
	"os"

	"github.com/Mrvatsan/APTITUDE-AI/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
