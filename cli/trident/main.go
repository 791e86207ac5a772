package main

import (
	"os"

	tridentcmder "github.com/tridentsearch/trident/cmd/trident"
)

func main() {
	cmd := tridentcmder.NewTridentCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
