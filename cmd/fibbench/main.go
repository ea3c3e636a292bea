package main

import "github.com/TheFahmi/argon-lang/internal/cli"

func main() {
	cli.Execute()
}
