package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/dshills/scopekey/internal/cli"
)

func main() {
	// Seed the environment from a .env file when one exists.
	_ = godotenv.Load()

	os.Exit(cli.Run())
}
