package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/Thucdzio/profilo/cmd"
)

func main() {
	cmd.Execute()
}
