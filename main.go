// Package main is the entry point for the screpview CLI tool, which decodes
// StarCraft: Brood War replay files and displays them in the terminal.
package main

import "github.com/pable/go-screp-view/cmd"

func main() {
	cmd.Execute()
}
