// Package paths provides path sanitization and validation for hearthkeep.
//
// Archive entry names are attacker-controlled, so every destination path is
// derived through SanitizeArchivePath, which can only ever resolve inside
// the installation root.
package paths
