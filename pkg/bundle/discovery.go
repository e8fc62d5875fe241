// File: pkg/bundle/discovery.go
package bundle

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fib/pkg/language"

	"go.uber.org/zap"
)

// excludedDirs lists directory names that are never descended into,
// compared case-insensitively at any depth.
var excludedDirs = map[string]struct{}{
	"bin":          {},
	"obj":          {},
	"debug":        {},
	"release":      {},
	".vs":          {},
	".git":         {},
	"node_modules": {},
	"packages":     {},
	".vscode":      {},
	".idea":        {},
	"target":       {},
	"build":        {},
	"dist":         {},
	"out":          {},
}

// IsExcludedDir reports whether a directory with the given base name is
// skipped during discovery.
func IsExcludedDir(name string) bool {
	_, ok := excludedDirs[strings.ToLower(name)]
	return ok
}

// Discover walks root and returns every file whose extension is in exts.
// Excluded directories are skipped wholesale and unreadable directories are
// skipped silently. Symlinks are followed: a linked file is included and a
// linked directory is walked under the link's own path. Each link target is
// walked at most once, so cycles terminate. The order of the result is not
// meaningful.
func Discover(root string, exts language.ExtensionSet, logger *zap.Logger) ([]File, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		logger.Error("Failed to resolve scan root", zap.String("root", root), zap.Error(err))
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		logger.Error("Scan root cannot be accessed", zap.String("root", absRoot), zap.Error(err))
		return nil, fmt.Errorf("cannot access directory %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", absRoot)
	}

	realRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		logger.Error("Failed to resolve scan root", zap.String("root", absRoot), zap.Error(err))
		return nil, fmt.Errorf("failed to resolve %s: %w", absRoot, err)
	}

	logger.Debug("Starting file discovery",
		zap.String("root", absRoot),
		zap.Strings("extensions", exts.Sorted()))

	w := &walker{
		exts:    exts,
		logger:  logger,
		visited: map[string]struct{}{realRoot: {}},
	}
	if err := w.walk(realRoot, absRoot); err != nil {
		logger.Error("Error during file discovery", zap.Error(err))
		return nil, fmt.Errorf("failed to walk %s: %w", absRoot, err)
	}

	logger.Debug("Completed file discovery", zap.Int("files", len(w.files)))
	return w.files, nil
}

// walker collects files for one Discover call.
type walker struct {
	exts    language.ExtensionSet
	logger  *zap.Logger
	visited map[string]struct{} // resolved directories already walked
	files   []File
}

// walk walks the directory realDir, reporting paths below logicalDir.
func (w *walker) walk(realDir, logicalDir string) error {
	return filepath.WalkDir(realDir, func(path string, d fs.DirEntry, err error) error {
		logical := logicalDir
		if rel, relErr := filepath.Rel(realDir, path); relErr == nil {
			logical = filepath.Join(logicalDir, rel)
		}

		if err != nil {
			if path == realDir && d == nil {
				return err
			}
			w.logger.Debug("Skipping unreadable path", zap.String("path", logical), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		switch {
		case d.IsDir():
			if path != realDir && IsExcludedDir(d.Name()) {
				w.logger.Debug("Skipping excluded directory", zap.String("directory", logical))
				return filepath.SkipDir
			}
		case d.Type()&fs.ModeSymlink != 0:
			w.followLink(path, logical, d.Name())
		case d.Type().IsRegular():
			w.add(logical, d.Name())
		}
		return nil
	})
}

// followLink includes a linked file or walks a linked directory. Broken
// links and targets that were already walked are skipped.
func (w *walker) followLink(path, logical, name string) {
	info, err := os.Stat(path)
	if err != nil {
		w.logger.Debug("Skipping broken symlink", zap.String("path", logical), zap.Error(err))
		return
	}
	if info.Mode().IsRegular() {
		w.add(logical, name)
		return
	}
	if !info.IsDir() {
		return
	}
	if IsExcludedDir(name) {
		w.logger.Debug("Skipping excluded directory", zap.String("directory", logical))
		return
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		w.logger.Debug("Skipping unresolvable symlink", zap.String("path", logical), zap.Error(err))
		return
	}
	if _, seen := w.visited[target]; seen {
		w.logger.Debug("Skipping already walked directory", zap.String("path", logical), zap.String("target", target))
		return
	}
	w.visited[target] = struct{}{}

	if err := w.walk(target, logical); err != nil {
		w.logger.Debug("Skipping unreadable linked directory", zap.String("path", logical), zap.Error(err))
	}
}

func (w *walker) add(path, name string) {
	if !w.exts.Matches(name) {
		return
	}
	w.files = append(w.files, File{
		Path: path,
		Name: name,
		Ext:  filepath.Ext(name),
	})
	w.logger.Debug("Discovered file", zap.String("filePath", path))
}
