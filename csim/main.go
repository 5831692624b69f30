// Command csim replays a valgrind memory trace against a simulated
// set-associative cache and prints the hit, miss and eviction counts.
package main

import "github.com/sarchlab/csim/csim/cmd"

func main() {
	cmd.Execute()
}
