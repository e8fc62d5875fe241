package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Test Plan for Run:
// - python scenario bundles a.py then sub/c.py, skipping b.txt and node_modules
// - invalid requests fail with *UserInputError before touching the filesystem
// - unknown languages are reported and skipped
// - zero matches is a warning: nil error, no artifact
// - relative output paths land under the scan directory
// - a previous bundle matching the languages is not bundled again
// - write failures surface as *WriteError

func TestRun_PythonScenario(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.py":              "A",
		"b.txt":             "B",
		"sub/c.py":          "C",
		"node_modules/d.py": "D",
	})

	rec := &recordingReporter{}
	res, err := Run(Request{
		Languages: []string{"python"},
		Output:    "bundle.txt",
		Sort:      SortByName,
		Directory: root,
	}, rec, zaptest.NewLogger(t))
	require.NoError(t, err)

	require.True(t, res.Written)
	assert.Equal(t, filepath.Join(root, "bundle.txt"), res.OutputPath)
	assert.Equal(t, []string{"a.py", "sub/c.py"}, relPaths(t, root, res.Files))
	assert.Equal(t, "A"+newline+newline+newline+"C"+newline+newline+newline, readFile(t, res.OutputPath))

	assert.Equal(t, root, rec.scanned)
	assert.Equal(t, 2, rec.found)
	assert.Equal(t, []string{"a.py", "c.py"}, rec.processed)
	assert.Equal(t, res.OutputPath, rec.completed)
	assert.False(t, rec.noFiles)
}

func TestRun_UserInputErrors(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		want error
	}{
		{"empty output", Request{Languages: []string{"go"}, Output: "  "}, ErrEmptyOutput},
		{"output is a directory", Request{Languages: []string{"go"}, Output: "out" + string(filepath.Separator)}, ErrEmptyOutput},
		{"output is a nested directory", Request{Languages: []string{"go"}, Output: "out/sub/"}, ErrEmptyOutput},
		{"no languages", Request{Output: "out.txt"}, ErrNoLanguagesSpecified},
		{"only unknown languages", Request{Languages: []string{"cobol"}, Output: "out.txt"}, ErrNoValidExtensions},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// A missing directory proves nothing is scanned before validation fails.
			c.req.Directory = filepath.Join(t.TempDir(), "does-not-exist")

			_, err := Run(c.req, nil, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, c.want)

			var uie *UserInputError
			assert.ErrorAs(t, err, &uie)
		})
	}
}

func TestRun_UnknownLanguagesAreReported(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"main.go": "package main"})

	rec := &recordingReporter{}
	res, err := Run(Request{
		Languages: []string{"cobol", "go", "brainfuck"},
		Output:    "out.txt",
		Directory: root,
	}, rec, nil)
	require.NoError(t, err)
	assert.True(t, res.Written)
	assert.Equal(t, []string{"cobol", "brainfuck"}, rec.unknown)
}

func TestRun_NoMatchingFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"readme.txt": "hi", "build/x.go": ""})

	rec := &recordingReporter{}
	res, err := Run(Request{
		Languages: []string{"go"},
		Output:    filepath.Join("nested", "out.txt"),
		Directory: root,
	}, rec, zap.NewNop())
	require.NoError(t, err)

	assert.False(t, res.Written)
	assert.True(t, rec.noFiles)
	assert.NoFileExists(t, filepath.Join(root, "nested", "out.txt"))
	assert.NoDirExists(t, filepath.Join(root, "nested"))
}

func TestRun_NoMatchingFilesLeavesExistingOutputUntouched(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "out.txt")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))

	_, err := Run(Request{Languages: []string{"swift"}, Output: out, Directory: root}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "previous", readFile(t, out))
}

func TestRun_CreatesMissingOutputDirectory(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"index.html": "<html></html>"})

	res, err := Run(Request{
		Languages: []string{"html"},
		Output:    filepath.Join("artifacts", "web", "bundle.txt"),
		Directory: root,
	}, nil, nil)
	require.NoError(t, err)
	assert.FileExists(t, res.OutputPath)
	assert.Equal(t, filepath.Join(root, "artifacts", "web", "bundle.txt"), res.OutputPath)
}

func TestRun_SortByTypeWithNotesAndAuthor(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"b.ts":   "B",
		"a.tsx":  "A",
		"z/c.ts": "C",
		"y.js":   "Y",
	})

	res, err := Run(Request{
		Languages:   []string{"typescript", "JavaScript"},
		Output:      "out.txt",
		Sort:        SortByType,
		IncludeNote: true,
		Author:      "dev",
		Directory:   root,
	}, nil, nil)
	require.NoError(t, err)

	var names []string
	for _, f := range res.Files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"y.js", "b.ts", "c.ts", "a.tsx"}, names)

	content := readFile(t, res.OutputPath)
	assert.Contains(t, content, "// Bundle created by: dev"+newline)
	assert.Contains(t, content, "// Source: z/c.ts"+newline+sourceSeparator+newline+"C")
}

func TestRun_WriteFailure(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.kt": "fun main() {}", "blocker": "x"})

	_, err := Run(Request{
		Languages: []string{"kotlin"},
		Output:    filepath.Join("blocker", "out.txt"),
		Directory: root,
	}, nil, nil)
	require.Error(t, err)

	var we *WriteError
	assert.ErrorAs(t, err, &we)
	assert.True(t, IsWriteKind(err, KindCreateOutputDir))
}

func TestRun_PreviousBundleIsNotIncluded(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.md":     "# A",
		"notes.md": "previous bundle",
	})
	req := Request{Languages: []string{"markdown"}, Output: "notes.md", Directory: root}

	rec := &recordingReporter{}
	res, err := Run(req, rec, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md"}, relPaths(t, root, res.Files))
	assert.Equal(t, 1, rec.found)
	assert.Equal(t, "# A"+newline+newline+newline, readFile(t, res.OutputPath))

	res, err = Run(req, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "# A"+newline+newline+newline, readFile(t, res.OutputPath))
}

func TestRun_OnlyPreviousBundleMatches(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"notes.md": "previous bundle"})

	rec := &recordingReporter{}
	res, err := Run(Request{Languages: []string{"markdown"}, Output: "notes.md", Directory: root}, rec, nil)
	require.NoError(t, err)
	assert.False(t, res.Written)
	assert.True(t, rec.noFiles)
	assert.Equal(t, "previous bundle", readFile(t, filepath.Join(root, "notes.md")))
}
