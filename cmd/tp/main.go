package main

import (
	"os"

	"github.com/ThisCore/treinopago/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
