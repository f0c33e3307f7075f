package main

import (
	"os"

	"github.com/lunarium/arcana/cmd/arcana/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
