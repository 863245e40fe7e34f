package main

import (
	"os"

	"github.com/letterly/letterly/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
