// Package constants provides shared constants used across the hearthkeep
// codebase. This package has no dependencies to avoid circular imports.
package constants

const (
	// AppName is used for XDG config/state/data subdirectories
	AppName = "hearthkeep"

	// ManifestExt is the extension of addon manifest files. A manifest
	// directly below an installed top-level folder defines that folder's
	// identity.
	ManifestExt = ".toc"

	// SavedVariablesDir is the directory name that holds per-addon state
	// files anywhere under the WTF root.
	SavedVariablesDir = "SavedVariables"

	// StateFileExt is the extension of saved-state files
	StateFileExt = ".lua"

	// BackupSuffix is appended to rotated saved-state files. Only the
	// combination StateFileExt+BackupSuffix is treated as a backup.
	BackupSuffix = ".bak"
)

const (
	// DirPermissions for directories created during extraction
	DirPermissions = 0o755

	// FilePermissions for files written during extraction
	FilePermissions = 0o644
)
