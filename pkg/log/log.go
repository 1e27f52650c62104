// Package log provides colored console output for the generator.
package log

import (
	"os"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()
var yellow = color.New(color.FgYellow).FprintfFunc()

var verbose = false

// SetVerbose enables or disables verbose messages.
func SetVerbose(v bool) {
	verbose = v
}

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func InfoMsg(format string, a ...interface{}) {
	blue(os.Stderr, "[+] "+format, a...)
}

// VerboseMsg prints a detail message to stderr in yellow color. It is a
// no-op unless verbose logging was enabled with SetVerbose.
func VerboseMsg(format string, a ...interface{}) {
	if !verbose {
		return
	}

	yellow(os.Stderr, "[*] "+format, a...)
}
