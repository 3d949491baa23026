package main

import "github.com/filespect/filespect/cmd/filespect"

func main() { filespect.Execute() }
