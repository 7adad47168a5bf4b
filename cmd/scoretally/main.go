package main

import "github.com/mlaroche/scoretally/internal/cli"

func main() {
	cli.Execute()
}
