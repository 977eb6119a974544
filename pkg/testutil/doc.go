// Package testutil provides shared helpers for hearthkeep tests, mainly
// fixture archives and on-disk directory trees.
package testutil
