package addon

import (
	"github.com/hearthkeep/hearthkeep/pkg/errors"
	"github.com/hearthkeep/hearthkeep/pkg/logging"
	"github.com/hearthkeep/hearthkeep/pkg/types"
)

// Delete removes every folder's directory tree from disk. Folders whose
// path no longer exists are skipped, so the operation is idempotent. The
// first failed deletion aborts the remainder; folders after it are left
// untouched.
func Delete(fs types.FS, folders []types.AddonFolder) error {
	logger := logging.GetLogger("remover")

	for _, folder := range folders {
		if _, err := fs.Stat(folder.Path); err != nil {
			logger.Debug().Str("path", folder.Path).Msg("Folder already absent")
			continue
		}
		if err := fs.RemoveAll(folder.Path); err != nil {
			return errors.Wrapf(err, errors.ErrDirDelete, "removing addon folder %s", folder.Path).
				WithDetail("id", folder.ID)
		}
		logger.Info().Str("id", folder.ID).Str("path", folder.Path).Msg("Removed addon folder")
	}

	return nil
}
