// File: pkg/bundle/config.go
package bundle

import "strings"

// SortMode selects the ordering applied to discovered files.
type SortMode string

const (
	SortByName SortMode = "name" // Order by file name only.
	SortByType SortMode = "type" // Order by extension, then file name.
)

// ParseSortMode maps s to a SortMode, ignoring case. Anything other than
// "type" yields SortByName.
func ParseSortMode(s string) SortMode {
	if strings.EqualFold(strings.TrimSpace(s), string(SortByType)) {
		return SortByType
	}
	return SortByName
}

// Request holds the options for one bundling run.
type Request struct {
	Languages        []string // Language identifiers, or "all".
	Output           string   // Destination path for the bundle.
	IncludeNote      bool     // Prefix each file with a source comment.
	Sort             SortMode // Ordering of files in the bundle.
	RemoveEmptyLines bool     // Drop empty and whitespace-only lines.
	Author           string   // Optional author written to the header.
	Directory        string   // Scan root; defaults to the working directory.
}

// File is a source file found during discovery.
type File struct {
	Path string // Absolute path.
	Name string // Base name.
	Ext  string // Extension as it appears on disk, including the dot.
}

// Result describes the outcome of Run.
type Result struct {
	Files      []File // Files in bundle order.
	OutputPath string // Absolute path of the written bundle.
	Written    bool   // False when no files matched and nothing was written.
}
