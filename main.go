// Package main is the entry point of the jstruct command.
package main

import "github.com/mouse-blink/jstruct/cmd"

func main() {
	cmd.Execute()
}
