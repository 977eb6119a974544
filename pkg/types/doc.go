// Package types defines the core types and interfaces used throughout
// hearthkeep. This includes the FS filesystem interface and the Addon and
// AddonFolder data structures shared by the installer, the remover and the
// registry.
package types
