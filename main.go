package main

import (
	"os"

	"github.com/sadaie/rsgen/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
