package bundle

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree creates files under root. Keys are slash-separated relative paths.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// relPaths returns the sorted slash-separated paths of files relative to root.
func relPaths(t *testing.T, root string, files []File) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f.Path)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	sort.Strings(out)
	return out
}

// recordingReporter captures events for assertions.
type recordingReporter struct {
	scanned   string
	unknown   []string
	noFiles   bool
	found     int
	processed []string
	completed string
}

func (r *recordingReporter) ScanStarted(dir string)      { r.scanned = dir }
func (r *recordingReporter) UnknownLanguage(id string)   { r.unknown = append(r.unknown, id) }
func (r *recordingReporter) NoFilesFound()               { r.noFiles = true }
func (r *recordingReporter) FilesFound(count int)        { r.found = count }
func (r *recordingReporter) FileProcessed(f File)        { r.processed = append(r.processed, f.Name) }
func (r *recordingReporter) Completed(outputPath string) { r.completed = outputPath }
