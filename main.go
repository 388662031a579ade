package main

import (
	"os"

	"github.com/ALPHA-CODE-HUB/voice-vot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
