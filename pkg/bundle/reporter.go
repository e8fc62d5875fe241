package bundle

import "go.uber.org/zap"

// Reporter receives progress and diagnostics during a run.
// Implementations can print to a console, draw a progress bar, or stay silent.
type Reporter interface {
	// ScanStarted is called once the scan root is known.
	ScanStarted(dir string)

	// UnknownLanguage is called for each identifier missing from the registry.
	UnknownLanguage(id string)

	// NoFilesFound is called when discovery matched nothing. No bundle is written.
	NoFilesFound()

	// FilesFound is called with the number of files that will be bundled.
	FilesFound(count int)

	// FileProcessed is called after each file has been appended to the bundle.
	FileProcessed(f File)

	// Completed is called after the bundle has been closed successfully.
	Completed(outputPath string)
}

// NoOpReporter discards every event.
type NoOpReporter struct{}

func (NoOpReporter) ScanStarted(string)     {}
func (NoOpReporter) UnknownLanguage(string) {}
func (NoOpReporter) NoFilesFound()          {}
func (NoOpReporter) FilesFound(int)         {}
func (NoOpReporter) FileProcessed(File)     {}
func (NoOpReporter) Completed(string)       {}

// LogReporter forwards events to a zap logger. It is used when the caller
// has no console to draw on.
type LogReporter struct {
	Logger *zap.Logger
}

// NewLogReporter returns a LogReporter, substituting a no-op logger for nil.
func NewLogReporter(logger *zap.Logger) *LogReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogReporter{Logger: logger}
}

func (r *LogReporter) ScanStarted(dir string) {
	r.Logger.Info("Scanning directory", zap.String("directory", dir))
}

func (r *LogReporter) UnknownLanguage(id string) {
	r.Logger.Warn("Unknown language", zap.String("language", id))
}

func (r *LogReporter) NoFilesFound() {
	r.Logger.Warn("No matching code files found")
}

func (r *LogReporter) FilesFound(count int) {
	r.Logger.Info("Found files", zap.Int("count", count))
}

func (r *LogReporter) FileProcessed(f File) {
	r.Logger.Debug("Bundled file", zap.String("file", f.Name))
}

func (r *LogReporter) Completed(outputPath string) {
	r.Logger.Info("Bundling completed", zap.String("outputFile", outputPath))
}
