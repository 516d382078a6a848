package main

import (
	"os"

	"github.com/dmitrymomot/valtree/cmd/valtree/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
