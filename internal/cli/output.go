package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/tacogips/repogen/internal/textfile"
)

// ANSI color codes
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorGray    = "\033[90m"
)

// out and errOut are replaced in tests.
var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// Output formatting helpers

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(out, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	printMarked("✓", colorGreen, msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	printMarked("⚠", colorYellow, msg)
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	printMarked("→", colorBlue, msg)
}

func printMarked(mark, color, msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Fprintf(out, "%s %s\n", mark, msg)
	} else {
		fmt.Fprintf(out, "%s%s%s %s\n", color, mark, colorReset, msg)
	}
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	if globalNoColor {
		fmt.Fprintf(errOut, "✗ %s\n", msg)
	} else {
		fmt.Fprintf(errOut, "%s✗%s %s\n", colorRed, colorReset, msg)
	}
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Fprintf(out, "\n=== %s ===\n", title)
	} else {
		fmt.Fprintf(out, "\n%s=== %s ===%s\n", colorMagenta, title, colorReset)
	}
}

// printAction prints one file outcome. dryRun switches to the conditional
// wording.
func printAction(action textfile.Action, path string, dryRun bool) {
	switch action {
	case textfile.ActionCreate:
		if dryRun {
			printProgress("Would create: " + path)
		} else {
			printSuccess("Created: " + path)
		}
	case textfile.ActionOverwrite:
		if dryRun {
			printProgress("Would overwrite: " + path)
		} else {
			printWarning("Overwritten: " + path)
		}
	default:
		if globalQuiet {
			return
		}
		if globalNoColor {
			fmt.Fprintf(out, "- Skipped: %s\n", path)
		} else {
			fmt.Fprintf(out, "%s- Skipped: %s%s\n", colorGray, path, colorReset)
		}
	}
}
