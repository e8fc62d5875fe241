// File: pkg/bundle/execute.go
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fib/pkg/language"

	"go.uber.org/zap"
)

// Run validates req, discovers matching files under req.Directory, sorts
// them and writes the bundle.
//
// Invalid requests fail with a *UserInputError before the filesystem is
// touched. When nothing matches, Run reports NoFilesFound and returns a
// Result with Written set to false and a nil error.
func Run(req Request, reporter Reporter, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reporter == nil {
		reporter = NoOpReporter{}
	}

	startTime := time.Now()
	logger.Debug("Starting bundle process",
		zap.Strings("languages", req.Languages),
		zap.String("output", req.Output),
		zap.String("sort", string(req.Sort)))

	if emptyFileName(req.Output) {
		return Result{}, &UserInputError{Err: ErrEmptyOutput}
	}
	if len(req.Languages) == 0 {
		return Result{}, &UserInputError{Err: ErrNoLanguagesSpecified}
	}

	exts, unknown, err := language.Resolve(req.Languages)
	for _, id := range unknown {
		reporter.UnknownLanguage(id)
	}
	if err != nil {
		logger.Debug("Failed to resolve languages", zap.Error(err))
		return Result{}, &UserInputError{Err: err}
	}

	dir := req.Directory
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			logger.Error("Failed to get current directory", zap.Error(err))
			return Result{}, fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return Result{}, fmt.Errorf("failed to get absolute path: %w", err)
	}
	reporter.ScanStarted(dir)

	output := req.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(dir, output)
	}

	files, err := Discover(dir, exts, logger)
	if err != nil {
		return Result{}, fmt.Errorf("failed to collect files: %w", err)
	}
	files = withoutPath(files, output)
	if len(files) == 0 {
		logger.Debug("No files to bundle after filtering")
		reporter.NoFilesFound()
		return Result{}, nil
	}
	reporter.FilesFound(len(files))

	files = SortFiles(files, req.Sort)

	opts := WriteOptions{
		Output:           output,
		BaseDir:          dir,
		IncludeNote:      req.IncludeNote,
		RemoveEmptyLines: req.RemoveEmptyLines,
		Author:           req.Author,
		Reporter:         reporter,
	}
	if err := WriteBundle(files, opts, logger); err != nil {
		logger.Error("Failed to write bundle", zap.String("outputFile", output), zap.Error(err))
		return Result{}, err
	}

	reporter.Completed(output)
	logger.Info("Successfully bundled files",
		zap.String("outputFile", output),
		zap.Int("totalFiles", len(files)),
		zap.Duration("elapsed", time.Since(startTime)))

	return Result{Files: files, OutputPath: output, Written: true}, nil
}

// emptyFileName reports whether output names no file: it is blank, or it
// ends in a path separator.
func emptyFileName(output string) bool {
	output = strings.TrimSpace(output)
	if output == "" || os.IsPathSeparator(output[len(output)-1]) {
		return true
	}
	return strings.TrimSpace(filepath.Base(output)) == ""
}

// withoutPath drops the file at path, so a previous bundle that matches the
// selected languages is not bundled into its replacement.
func withoutPath(files []File, path string) []File {
	path = filepath.Clean(path)
	kept := files[:0]
	for _, f := range files {
		if filepath.Clean(f.Path) != path {
			kept = append(kept, f)
		}
	}
	return kept
}
