package main

import (
	"github.com/xkilldash9x/humanpath/cmd"
)

// main is the entry point for the humanpath CLI. Command-line parsing,
// configuration, and execution all live in the cmd package.
func main() {
	cmd.Execute()
}
