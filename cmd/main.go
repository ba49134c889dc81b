package main

import (
	"os"

	"github.com/sixhops/sixhops/cmd/sixhops"
)

func main() {
	if err := sixhops.Execute(); err != nil {
		os.Exit(1)
	}
}
