package main

import (
	"os"

	atriumcmder "github.com/atriumhq/atrium/cmd/atrium"
)

func main() {
	cmd := atriumcmder.NewAtriumCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
