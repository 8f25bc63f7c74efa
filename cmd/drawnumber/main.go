package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/idilsaglam/drawnumber/internal/cli"
)

// Set by ldflags.
var version = "dev"

func main() {
	// Optional .env with DRAWNUMBER_* overrides.
	_ = godotenv.Load()

	os.Exit(cli.Run(os.Args[1:], version))
}
