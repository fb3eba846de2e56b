package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Output streams. Tests swap these for buffers.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	successMark  = color.New(color.FgGreen)
	warningMark  = color.New(color.FgYellow)
	errorMark    = color.New(color.FgRed)
	progressMark = color.New(color.FgBlue)
	headerColor  = color.New(color.FgMagenta)
)

// mark renders a status symbol, colored unless --no-color is set.
func mark(c *color.Color, symbol string) string {
	if globalNoColor {
		return symbol
	}
	return c.Sprint(symbol)
}

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", mark(successMark, "✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", mark(warningMark, "⚠"), msg)
}

// printErrorMsg prints an error message. It is never silenced by --quiet.
func printErrorMsg(msg string) {
	fmt.Fprintf(stderr, "%s %s\n", mark(errorMark, "✗"), msg)
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", mark(progressMark, "→"), msg)
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Fprintf(stdout, "\n=== %s ===\n", title)
		return
	}
	fmt.Fprintf(stdout, "\n%s\n", headerColor.Sprintf("=== %s ===", title))
}

// consoleReporter forwards scaffold progress to the output helpers.
type consoleReporter struct{}

func (consoleReporter) Progress(msg string) { printProgress(msg) }
func (consoleReporter) Success(msg string)  { printSuccess(msg) }
func (consoleReporter) Warning(msg string)  { printWarning(msg) }
