// blockview is a small CLI for looking at how block arrays lay out and grow.
//
// Usage:
//
//	blockview layout 5 25 26 31            # block lengths after each resize
//	blockview layout --growth fixed 25     # same, under another policy
//	blockview append -n 1000000            # append throughput vs a flat slice
package main

func main() {
	execute()
}
