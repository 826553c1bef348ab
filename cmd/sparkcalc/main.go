package main

import (
	"os"

	"sparkcalc/cmd/sparkcalc/commands"
	"sparkcalc/internal/logger"
)

func main() {
	err := commands.Execute()
	logger.Stop()
	if err != nil {
		os.Exit(1)
	}
}
