// Package main is the entry point for the gutrun CLI.
package main

import "gutrun.dev/pkg/gutrun/cmd"

func main() {
	cmd.Execute()
}
