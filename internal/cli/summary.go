package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/scopekey/internal/config"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the published configuration with the API key masked",
	Run: func(cmd *cobra.Command, args []string) {
		renderSummary(os.Stdout, config.Summarize())
	},
}

const summaryRule = 65

// renderSummary writes the fixed-layout configuration report. The API key is
// already masked in the Summary.
func renderSummary(w io.Writer, s config.Summary) {
	ew := &errWriter{w: w}

	rule := strings.Repeat("-", summaryRule)
	ew.println("")
	ew.println(rule)
	ew.println("                    Configuration Summary")
	ew.println(rule)
	ew.printf("  %-32s: %s\n", config.KeyAPIKey, s.MaskedKey)
	ew.printf("  %-32s: Alibaba Cloud %s\n", "Environment", s.Environment)
	ew.printf("  %-32s: %s\n", config.KeyCompatBaseURL, s.CompatBaseURL)
	ew.printf("  %-32s: %s\n", config.KeyNativeBaseURL, s.NativeBaseURL)
	ew.println(rule)
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
