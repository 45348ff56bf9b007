package main

import (
	"os"

	"github.com/accelleon/cloudmgmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
