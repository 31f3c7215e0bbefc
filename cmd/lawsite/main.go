// Package main is the entry point for the lawsite server and its
// maintenance commands.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
