// Package addon implements the on-disk lifecycle of addon packages:
// installing a downloaded archive into the addon root, removing an addon's
// folders, and reconciling orphaned SavedVariables files.
//
// Install is destructive and not transactional: the addon's previous folders
// are deleted before extraction begins, so a failure mid-extraction leaves
// the addon uninstalled. Callers own serialization; none of the operations
// here tolerate concurrent mutation of the paths they touch.
package addon
