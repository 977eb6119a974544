package paths

import (
	"path/filepath"
	"strings"
)

// safeComponents splits an archive entry name into the path components that
// are safe to write under an installation root. Empty, "." and ".."
// components and drive prefixes are dropped rather than rejected: hostile
// names degrade to something benign, they never produce an error.
func safeComponents(name string) []string {
	// Truncate at the first NUL, matching what the OS would accept anyway
	if i := strings.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}

	// Archive names use forward slashes, but a hostile archiver may have
	// written backslash separators. Normalize before splitting.
	name = strings.ReplaceAll(name, `\`, "/")

	parts := strings.Split(name, "/")
	components := make([]string, 0, len(parts))
	for _, part := range parts {
		switch part {
		case "", ".", "..":
			continue
		}
		if isDrivePrefix(part) {
			continue
		}
		components = append(components, part)
	}
	return components
}

// isDrivePrefix reports whether a component is a Windows drive or volume
// prefix such as "C:". Entries carrying one were written by a Windows
// archiver with absolute paths.
func isDrivePrefix(part string) bool {
	return len(part) == 2 && part[1] == ':' &&
		(('a' <= part[0] && part[0] <= 'z') || ('A' <= part[0] && part[0] <= 'Z'))
}

// SanitizeArchivePath maps an archive-internal entry name to a destination
// path guaranteed to resolve inside root. It is pure and never fails; a name
// made up entirely of unsafe components degrades to root itself.
func SanitizeArchivePath(root, name string) string {
	components := safeComponents(name)
	if len(components) == 0 {
		return filepath.Clean(root)
	}
	return filepath.Join(append([]string{root}, components...)...)
}

// TopLevelSegment returns the first safe path segment of an archive entry
// name. The second return is false when the name has no safe segment at all.
func TopLevelSegment(name string) (string, bool) {
	components := safeComponents(name)
	if len(components) == 0 {
		return "", false
	}
	return components[0], true
}

// ContainsPath checks if child is contained within parent. Both paths are
// normalized before comparison.
func ContainsPath(parent, child string) bool {
	parent = filepath.Clean(parent)
	child = filepath.Clean(child)

	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
