// Package main provides the units CLI.
package main

import "github.com/mesh-intelligence/units/internal/cli"

func main() {
	cli.Execute()
}
