package main

import (
	"os"

	"github.com/zoobzio/capitan"

	"github.com/zoobzio/panel/cmd/panel/commands"
)

func main() {
	err := commands.Execute()
	capitan.Shutdown()
	if err != nil {
		os.Exit(1)
	}
}
