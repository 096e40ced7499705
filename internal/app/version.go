package app

import (
	"fmt"
	"io"
)

// Version is the application version. It is overridden at release time via
// -ldflags "-X github.com/agbru/partcalc/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version banner.
// This runs before flag parsing so that -version works even alongside
// otherwise-invalid flags.
func HasVersionFlag(args []string) bool {
	for _, a := range args {
		if a == "-version" || a == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "partcalc %s\n", Version)
}
