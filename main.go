package main

import (
	"os"

	"github.com/mckimdesign/archsite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
