package language

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_EveryLanguageHasExtensions(t *testing.T) {
	for _, name := range Names() {
		exts, ok := Lookup(name)
		require.True(t, ok, name)
		require.NotEmpty(t, exts, name)
		for _, ext := range exts {
			assert.True(t, strings.HasPrefix(ext, "."), "%s: %q", name, ext)
			assert.Greater(t, len(ext), 1, "%s: %q", name, ext)
		}
	}
}

func TestLookup_CaseInsensitiveAndTrimmed(t *testing.T) {
	exts, ok := Lookup("  TypeScript ")
	require.True(t, ok)
	assert.Equal(t, []string{".ts", ".tsx"}, exts)

	_, ok = Lookup("cobol")
	assert.False(t, ok)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	exts, _ := Lookup("python")
	exts[0] = ".mutated"

	again, _ := Lookup("python")
	assert.Equal(t, []string{".py"}, again)
}

func TestNames_ContainsRequiredVocabulary(t *testing.T) {
	required := []string{
		"csharp", "java", "python", "javascript", "typescript", "html", "css",
		"cpp", "c", "php", "ruby", "go", "rust", "sql", "swift", "kotlin", "r",
		"perl", "shell", "powershell", "xml", "json", "yaml", "markdown",
	}
	names := Names()
	for _, r := range required {
		assert.Contains(t, names, r)
	}
	assert.IsIncreasing(t, names)
}

func TestResolve_Empty(t *testing.T) {
	_, _, err := Resolve(nil)
	assert.ErrorIs(t, err, ErrNoLanguagesSpecified)

	_, _, err = Resolve([]string{})
	assert.ErrorIs(t, err, ErrNoLanguagesSpecified)
}

func TestResolve_OnlyUnknown(t *testing.T) {
	exts, unknown, err := Resolve([]string{"cobol", "fortran"})
	assert.ErrorIs(t, err, ErrNoValidExtensions)
	assert.Nil(t, exts)
	assert.Equal(t, []string{"cobol", "fortran"}, unknown)
}

func TestResolve_AllIsUnionOfRegistry(t *testing.T) {
	want := make(ExtensionSet)
	for _, exts := range registry {
		want.add(exts...)
	}

	for _, input := range [][]string{{"all"}, {"ALL"}, {"python", " All ", "cobol"}} {
		got, unknown, err := Resolve(input)
		require.NoError(t, err)
		assert.Empty(t, unknown, "other entries are ignored when all is present")
		assert.Equal(t, want, got)
	}
}

func TestResolve_UnknownAreSkipped(t *testing.T) {
	exts, unknown, err := Resolve([]string{"Python", "cobol", " go "})
	require.NoError(t, err)
	assert.Equal(t, []string{"cobol"}, unknown)
	assert.Equal(t, []string{".go", ".py"}, exts.Sorted())
}

func TestResolve_SharedExtensionsAreDeduplicated(t *testing.T) {
	exts, _, err := Resolve([]string{"c", "cpp"})
	require.NoError(t, err)

	assert.Equal(t,
		[]string{".c", ".cc", ".cpp", ".cxx", ".h", ".hpp", ".hxx"},
		exts.Sorted())
}

func TestExtensionSet_Matches(t *testing.T) {
	exts, _, err := Resolve([]string{"python", "r"})
	require.NoError(t, err)

	cases := []struct {
		name string
		want bool
	}{
		{"main.py", true},
		{"MAIN.PY", true},
		{"analysis.R", true},
		{"analysis.r", true},
		{"notes.txt", false},
		{"py", false},
		{".py", true},
		{"archive.py.bak", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, exts.Matches(c.name), c.name)
	}
}
