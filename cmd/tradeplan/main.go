package main

import (
	"os"

	"github.com/ultrasignals/tradeplan/cmd/tradeplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
