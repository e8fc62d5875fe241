package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"fib/pkg/bundle"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// consoleReporter prints bundling progress for a human. On a terminal it
// draws a progress bar; otherwise it lists each file on its own line.
type consoleReporter struct {
	out         io.Writer
	styles      styles
	interactive bool
	bar         *progressbar.ProgressBar
}

func newConsoleReporter(out io.Writer) *consoleReporter {
	return &consoleReporter{
		out:         out,
		styles:      newStyles(out),
		interactive: isTerminal(out),
	}
}

func (c *consoleReporter) ScanStarted(dir string) {
	fmt.Fprintln(c.out, c.styles.title.Render("Starting bundling process..."))
	fmt.Fprintln(c.out, c.styles.muted.Render("Scanning directory: "+dir))
	fmt.Fprintln(c.out)
}

func (c *consoleReporter) UnknownLanguage(id string) {
	fmt.Fprintln(c.out, c.styles.warning.Render("⚠️ Unknown language: "+id))
}

func (c *consoleReporter) NoFilesFound() {
	fmt.Fprintln(c.out, c.styles.warning.Render("⚠️ No matching code files found."))
}

func (c *consoleReporter) FilesFound(count int) {
	fmt.Fprintf(c.out, "Found %d files:\n\n", count)
	if !c.interactive {
		return
	}
	c.bar = progressbar.NewOptions(count,
		progressbar.OptionSetWriter(c.out),
		progressbar.OptionSetDescription("Bundling"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)
}

func (c *consoleReporter) FileProcessed(f bundle.File) {
	if c.bar != nil {
		c.bar.Describe(f.Name)
		_ = c.bar.Add(1)
		return
	}
	fmt.Fprintln(c.out, "  📄 "+f.Name)
}

func (c *consoleReporter) Completed(outputPath string) {
	if c.bar != nil {
		// Finish leaves the cursor at the end of the bar.
		_ = c.bar.Finish()
	}
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.success.Render("✅ Bundling completed successfully!"))
	fmt.Fprintln(c.out, c.styles.success.Render("📄 File saved at: "+outputPath))
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
