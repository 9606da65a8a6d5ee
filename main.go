package main

import (
	"os"

	"github.com/mreg-project/mreg/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
