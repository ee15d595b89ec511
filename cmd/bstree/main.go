// Command bstree builds binary search trees of integers, prints their
// traversals and stores them as snapshots.
package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("bstree: %v", err)
		os.Exit(1)
	}
}
