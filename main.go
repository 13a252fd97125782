// Package main is the entry point for the mutview CLI.
package main

import "gooze.dev/pkg/mutview/cmd"

func main() {
	cmd.Execute()
}
