// Package language maps programming language identifiers to the file
// extensions that belong to them.
package language

import (
	"sort"
	"strings"
)

// All is the sentinel identifier that selects every registered language.
const All = "all"

// registry maps a lower-case language identifier to its extensions.
// Several languages may claim the same extension (".h" for c and cpp).
var registry = map[string][]string{
	"csharp":     {".cs"},
	"java":       {".java"},
	"python":     {".py"},
	"javascript": {".js", ".jsx"},
	"typescript": {".ts", ".tsx"},
	"html":       {".html", ".htm"},
	"css":        {".css", ".scss", ".sass", ".less"},
	"cpp":        {".cpp", ".cc", ".cxx", ".h", ".hpp", ".hxx"},
	"c":          {".c", ".h"},
	"php":        {".php"},
	"ruby":       {".rb"},
	"go":         {".go"},
	"rust":       {".rs"},
	"sql":        {".sql"},
	"swift":      {".swift"},
	"kotlin":     {".kt", ".kts"},
	"r":          {".r", ".R"},
	"perl":       {".pl", ".pm"},
	"shell":      {".sh", ".bash"},
	"powershell": {".ps1", ".psm1"},
	"xml":        {".xml", ".xaml"},
	"json":       {".json"},
	"yaml":       {".yaml", ".yml"},
	"markdown":   {".md"},
}

// Lookup returns the extensions registered for id. The identifier is
// trimmed and compared case-insensitively. The returned slice is a copy.
func Lookup(id string) ([]string, bool) {
	exts, ok := registry[normalizeID(id)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), exts...), true
}

// Names returns every registered language identifier in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
