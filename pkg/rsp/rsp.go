// Package rsp builds response files: plain text files holding one
// bundle invocation, one flag per line, that the CLI expands with @file.
package rsp

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	// Extension is appended to response file names that lack it.
	Extension = ".rsp"
	// DefaultFileName is used when no file name is given.
	DefaultFileName = "commands.rsp"
)

// Options captures the answers that make up a bundle invocation.
type Options struct {
	Languages        string // Free-form list separated by commas, spaces or semicolons.
	Output           string // Bundle output path.
	IncludeNote      bool   // Emit --note.
	Sort             string // "name" or "type".
	RemoveEmptyLines bool   // Emit --remove-empty-lines.
	Author           string // Emit --author when not blank.
	FileName         string // Response file name; normalized by NormalizeFileName.
}

// SplitLanguages splits a free-form language list on commas, spaces and
// semicolons, dropping empty entries.
func SplitLanguages(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
}

// NormalizeFileName trims name, defaults it to DefaultFileName and makes
// sure it ends with .rsp.
func NormalizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultFileName
	}
	if !strings.HasSuffix(strings.ToLower(name), Extension) {
		name += Extension
	}
	return name
}

// Build renders the response file content for opts.
func Build(opts Options) string {
	var sb strings.Builder
	sb.WriteString("bundle\n")

	sb.WriteString("--language")
	for _, lang := range SplitLanguages(opts.Languages) {
		sb.WriteString(" " + strings.TrimSpace(lang))
	}
	sb.WriteString("\n")

	sb.WriteString("--output " + QuoteArg(opts.Output) + "\n")

	if opts.IncludeNote {
		sb.WriteString("--note\n")
	}
	if opts.RemoveEmptyLines {
		sb.WriteString("--remove-empty-lines\n")
	}

	sb.WriteString("--sort " + opts.Sort + "\n")

	if strings.TrimSpace(opts.Author) != "" {
		sb.WriteString("--author " + QuoteArg(opts.Author) + "\n")
	}
	return sb.String()
}

// Write renders opts and saves it under dir. It returns the path written.
func Write(dir string, opts Options, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	path := filepath.Join(dir, NormalizeFileName(opts.FileName))
	if err := os.WriteFile(path, []byte(Build(opts)), 0o644); err != nil {
		logger.Error("Failed to write response file", zap.String("path", path), zap.Error(err))
		if errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("no permission to write in location %s: %w", dir, err)
		}
		return "", fmt.Errorf("error saving the file: %w", err)
	}

	logger.Debug("Wrote response file", zap.String("path", path))
	return path, nil
}
