// File: pkg/bundle/writer.go
package bundle

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	commentPrefix   = "// "
	timestampLayout = "2006-01-02 15:04:05"
)

// sourceSeparator follows every source note.
var sourceSeparator = commentPrefix + strings.Repeat("-", 40)

// newline is the line terminator used throughout the bundle.
var newline = platformNewline()

var (
	utf8BOM        = []byte{0xEF, 0xBB, 0xBF}
	lineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

func platformNewline() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// WriteOptions controls how WriteBundle lays out the bundle.
type WriteOptions struct {
	Output           string           // Destination path; parent directories are created.
	BaseDir          string           // Source notes are relative to this directory.
	IncludeNote      bool             // Write a source comment before each file.
	RemoveEmptyLines bool             // Drop empty and whitespace-only lines.
	Author           string           // Header author; no header when blank.
	Now              func() time.Time // Clock for the header; defaults to time.Now.
	Reporter         Reporter         // Receives FileProcessed events; may be nil.
}

// WriteBundle writes files, in the given order, to opts.Output. The output
// is truncated first and is always closed before WriteBundle returns. Every
// failure is returned as a *WriteError; a partially written bundle is left
// in place.
func WriteBundle(files []File, opts WriteOptions, logger *zap.Logger) (err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = NoOpReporter{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	outputPath, absErr := filepath.Abs(opts.Output)
	if absErr != nil {
		outputPath = opts.Output
	}
	outputDir := filepath.Dir(outputPath)

	if err := ensureDirectory(outputDir, logger); err != nil {
		return &WriteError{Kind: KindCreateOutputDir, Path: outputDir, Err: err}
	}

	logger.Debug("Writing bundle", zap.String("outputFile", outputPath), zap.Int("files", len(files)))

	outFile, createErr := os.Create(outputPath)
	if createErr != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(createErr))
		return newWriteError(createErr, outputPath)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			if err == nil {
				err = newWriteError(closeErr, outputPath)
			}
		}
	}()

	writer := bufio.NewWriter(outFile)

	if strings.TrimSpace(opts.Author) != "" {
		header := commentPrefix + "Bundle created by: " + opts.Author + newline +
			commentPrefix + "Created on: " + now().Format(timestampLayout) + newline +
			newline
		if _, err := writer.WriteString(header); err != nil {
			logger.Error("Failed to write header", zap.String("file", outputPath), zap.Error(err))
			return newWriteError(err, outputPath)
		}
	}

	for _, f := range files {
		section, err := renderFile(f, opts)
		if err != nil {
			logger.Error("Failed to read source file", zap.String("filePath", f.Path), zap.Error(err))
			return &WriteError{Kind: KindIO, Path: outputPath, Err: err}
		}

		if _, err := writer.WriteString(section); err != nil {
			logger.Error("Failed to write content to bundle",
				zap.String("file", outputPath),
				zap.String("contentPath", f.Path),
				zap.Error(err))
			return newWriteError(err, outputPath)
		}
		reporter.FileProcessed(f)
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return newWriteError(err, outputPath)
	}

	return nil
}

// renderFile returns the bundle section for one file: the optional source
// note, the content and the trailing separator.
func renderFile(f File, opts WriteOptions) (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", f.Path, err)
	}
	content := string(bytes.TrimPrefix(data, utf8BOM))

	if opts.RemoveEmptyLines {
		content = StripEmptyLines(content)
	}

	var sb strings.Builder
	if opts.IncludeNote {
		sb.WriteString(commentPrefix + "Source: " + relativePath(opts.BaseDir, f.Path) + newline)
		sb.WriteString(sourceSeparator + newline)
	}
	sb.WriteString(content)
	sb.WriteString(newline + newline + newline)
	return sb.String(), nil
}

// StripEmptyLines removes lines that are empty or contain only whitespace.
// Input may use any mix of \r\n, \r and \n; the result is joined with the
// platform newline.
func StripEmptyLines(content string) string {
	lines := strings.Split(lineNormalizer.Replace(content), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, newline)
}

// relativePath returns path relative to base using forward slashes,
// falling back to the absolute path.
func relativePath(base, path string) string {
	if base == "" {
		return filepath.ToSlash(path)
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		absBase = base
	}
	rel, err := filepath.Rel(absBase, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// newWriteError classifies err into a *WriteError for outputPath.
func newWriteError(err error, outputPath string) *WriteError {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return &WriteError{Kind: KindPermission, Path: filepath.Dir(outputPath), Err: err}
	case errors.Is(err, fs.ErrNotExist):
		return &WriteError{Kind: KindNotFound, Path: filepath.Dir(outputPath), Err: err}
	default:
		return &WriteError{Kind: KindIO, Path: outputPath, Err: err}
	}
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}
