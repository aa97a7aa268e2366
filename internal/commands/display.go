package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// formatSuccessMessage creates a standardized success message
func formatSuccessMessage(action, url string) string {
	return fmt.Sprintf("✅ Successfully %s: %s\n", action, url)
}

// DisplaySuccessMessage displays a formatted success message
func DisplaySuccessMessage(w io.Writer, action, url string) {
	fmt.Fprint(w, green(formatSuccessMessage(action, url)))
}

// DisplayFileUpdated reports that the local document now records its issue
func DisplayFileUpdated(w io.Writer, number int) {
	fmt.Fprintf(w, "📝 Local file updated with issue_number: %d\n", number)
}

// DisplayWarning displays a warning line
func DisplayWarning(w io.Writer, format string, args ...any) {
	fmt.Fprint(w, yellow(fmt.Sprintf("⚠️  Warning: "+format+"\n", args...)))
}

// DisplayError displays an error line
func DisplayError(w io.Writer, format string, args ...any) {
	fmt.Fprint(w, red(fmt.Sprintf(format+"\n", args...)))
}
