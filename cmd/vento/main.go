package main

import (
	"log"
	"os"

	"vento/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		log.Printf("vento: %v", err)
		os.Exit(1)
	}
}
