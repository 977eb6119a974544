package addon

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hearthkeep/hearthkeep/pkg/constants"
	"github.com/hearthkeep/hearthkeep/pkg/errors"
	"github.com/hearthkeep/hearthkeep/pkg/logging"
	"github.com/hearthkeep/hearthkeep/pkg/types"
)

// DeleteSavedVariables walks stateRoot and removes every saved-state file
// that belongs to one of the given folders. State files live in directories
// named SavedVariables and are named "<id>.lua" or "<id>.lua.bak"; a bare
// ".bak" without the state extension is not a backup and never matches.
// Unreadable entries are skipped; a failed deletion of a matched file
// aborts immediately.
func DeleteSavedVariables(folders []types.AddonFolder, stateRoot string) error {
	logger := logging.GetLogger("savedvars")

	return filepath.WalkDir(stateRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) != constants.SavedVariablesDir {
			return nil
		}

		// Names that aren't valid text can never match an addon id
		name := d.Name()
		if !utf8.ValidString(name) {
			return nil
		}

		candidate := name
		if strings.HasSuffix(candidate, constants.StateFileExt+constants.BackupSuffix) {
			candidate = strings.TrimSuffix(candidate, constants.BackupSuffix)
		}
		candidate = strings.TrimSuffix(candidate, constants.StateFileExt)

		for _, folder := range folders {
			if candidate == folder.ID {
				if err := os.Remove(path); err != nil {
					return errors.Wrapf(err, errors.ErrStateDelete, "removing state file %s", path)
				}
				logger.Info().Str("file", path).Str("id", folder.ID).Msg("Removed saved variables file")
				break
			}
		}

		return nil
	})
}
