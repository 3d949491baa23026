// Package filespect provides the command-line interface for the filespect
// tool. It configures subcommands (scan, types), parses flags, and executes
// the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/filespect/filespect/cmd/filespect"
//	func main() { filespect.Execute() }
package filespect
