// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command gatesim computes the signals of a 16 bits logic circuit.
//
// Usage:
//
//	gatesim resolve -w a circuit.txt
//	gatesim resolve -w a --feed b circuit.txt
//	gatesim dump circuit.txt
//	gatesim check circuit.txt
//
package main

import "github.com/db47h/gatesim/internal/cli"

func main() {
	cli.Execute()
}
