package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/tacogips/sitekit/internal/cli"
)

func main() {
	cli.Execute()
}
