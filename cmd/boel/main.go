// Package main provides the boel CLI.
package main

import "github.com/boel-dev/boel/cmd/boel/cmd"

func main() {
	cmd.Execute()
}
