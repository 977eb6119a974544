package types

import "sort"

// AddonFolder represents one top-level installed directory belonging to an
// addon, together with the stable identity derived from its toc manifest.
type AddonFolder struct {
	// ID is the manifest file name with the extension stripped. It is the
	// key used to correlate SavedVariables files with the folder.
	ID string `toml:"id"`

	// Path is the absolute path to the installed directory
	Path string `toml:"path"`

	// Title is the display name from the manifest's Title directive, if any.
	// Informational only; never part of ordering or equality.
	Title string `toml:"title,omitempty"`

	// Version is the manifest's Version directive, if any. Informational only.
	Version string `toml:"version,omitempty"`
}

// Less reports whether f orders before other. Folders order by ID, then by
// Path, so result sets are deterministic across runs.
func (f AddonFolder) Less(other AddonFolder) bool {
	if f.ID != other.ID {
		return f.ID < other.ID
	}
	return f.Path < other.Path
}

// Equal reports structural equality on (ID, Path). Multi-toc folders that
// resolve to the same identity compare equal and collapse during dedup.
func (f AddonFolder) Equal(other AddonFolder) bool {
	return f.ID == other.ID && f.Path == other.Path
}

// Addon represents a logical addon package: one primary archive identifier
// and the top-level folders it owns on disk.
type Addon struct {
	// Name is the display name of the addon
	Name string `toml:"name"`

	// PrimaryFolderID identifies the addon and names its downloaded archive
	PrimaryFolderID string `toml:"primary_folder_id"`

	// Version is the installed version, if known
	Version string `toml:"version,omitempty"`

	// Folders lists every top-level directory the addon owns
	Folders []AddonFolder `toml:"folders"`
}

// SortFolders orders folders by (ID, Path) in place
func SortFolders(folders []AddonFolder) {
	sort.Slice(folders, func(i, j int) bool {
		return folders[i].Less(folders[j])
	})
}

// DedupFolders removes consecutive structurally-equal folders from a sorted
// slice and returns the shortened slice.
func DedupFolders(folders []AddonFolder) []AddonFolder {
	if len(folders) < 2 {
		return folders
	}
	out := folders[:1]
	for _, f := range folders[1:] {
		if !f.Equal(out[len(out)-1]) {
			out = append(out, f)
		}
	}
	return out
}
