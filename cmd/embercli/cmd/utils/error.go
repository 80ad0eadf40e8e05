package utils

import (
	"fmt"
	"os"
)

// Error prints the error message and exits.
func Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
