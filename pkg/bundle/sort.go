package bundle

import (
	"sort"
	"strings"
)

// SortFiles returns a copy of files ordered by mode. Comparisons are
// ordinal. Files with equal keys are ordered by path so the result is
// reproducible.
func SortFiles(files []File, mode SortMode) []File {
	sorted := append([]File(nil), files...)

	byName := func(a, b File) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	}

	less := func(i, j int) bool {
		return byName(sorted[i], sorted[j]) < 0
	}
	if mode == SortByType {
		less = func(i, j int) bool {
			if c := strings.Compare(sorted[i].Ext, sorted[j].Ext); c != 0 {
				return c < 0
			}
			return byName(sorted[i], sorted[j]) < 0
		}
	}

	sort.SliceStable(sorted, less)
	return sorted
}
