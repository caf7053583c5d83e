package localfs

import (
	"path/filepath"
	"strings"
)

// IsHidden returns true if the file or directory at the given path is hidden.
// On Unix systems, this checks if the base name starts with a dot.
func IsHidden(path string) bool {
	return IsHiddenName(filepath.Base(path))
}

// IsHiddenName returns true if the given filename (not path) is a dot-file.
// Special entries "." and ".." are not considered hidden.
func IsHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// WithoutHidden returns the entries whose names are not hidden.
// The input slice is not modified.
func WithoutHidden(entries []FileEntry) []FileEntry {
	result := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		if !IsHiddenName(e.Name) {
			result = append(result, e)
		}
	}
	return result
}
