//go:build !cgo

package main

import (
	"flag"
	"fmt"
	"os"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var showVersion bool

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("Plushie Shop %s (%s) %s\n", version, commit, date)
		return
	}

	fmt.Fprintln(os.Stderr, "Plushie Shop needs the windowed build (cgo/raylib enabled).")
	fmt.Fprintln(os.Stderr, "The ledger is still available through plushie-ledger.")
	os.Exit(1)
}
