package addon

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/hearthkeep/hearthkeep/pkg/constants"
	"github.com/hearthkeep/hearthkeep/pkg/errors"
	"github.com/hearthkeep/hearthkeep/pkg/logging"
	"github.com/hearthkeep/hearthkeep/pkg/paths"
	"github.com/hearthkeep/hearthkeep/pkg/toc"
	"github.com/hearthkeep/hearthkeep/pkg/types"
)

// Install extracts the addon's downloaded archive from fromDir into toDir
// and returns the top-level folders the archive defined, sorted by (ID,
// Path) and deduplicated.
//
// The addon's previously installed folders and any stale top-level folders
// the archive is about to recreate are removed first (upgrade in place, not
// an incremental patch). The source archive is deleted once extraction
// finishes; a failure to delete it fails the whole install, since the
// archive could otherwise be reprocessed. There is no rollback.
func Install(a types.Addon, fromDir, toDir string) ([]types.AddonFolder, error) {
	logger := logging.GetLogger("installer")
	done := logging.LogOperationStart(logger, "install")
	defer done()

	archivePath := filepath.Join(fromDir, a.PrimaryFolderID)
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveOpen, "opening archive %s", archivePath)
	}

	manifests, err := extract(reader, a, toDir, logger)
	if cerr := reader.Close(); err == nil && cerr != nil {
		err = errors.Wrapf(cerr, errors.ErrArchiveRead, "closing archive %s", archivePath)
	}
	if err != nil {
		return nil, err
	}

	if err := os.Remove(archivePath); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileDelete, "removing source archive %s", archivePath)
	}

	folders := make([]types.AddonFolder, 0, len(manifests))
	for _, manifest := range manifests {
		if folder, ok := toc.Parse(manifest); ok {
			folders = append(folders, folder)
		}
	}

	types.SortFolders(folders)
	// Multi-toc packages insert the same identity more than once
	folders = types.DedupFolders(folders)

	logger.Info().
		Str("addon", a.PrimaryFolderID).
		Int("folders", len(folders)).
		Msg("Addon installed")

	return folders, nil
}

// extract runs the destructive part of an install: clearing previous and
// stale folders, then writing every archive entry through the sanitizer.
// It returns the manifest candidates seen during extraction.
func extract(reader *zip.ReadCloser, a types.Addon, toDir string, logger zerolog.Logger) ([]string, error) {
	// Remove the addon's previous on-disk state
	for _, folder := range a.Folders {
		if _, err := os.Stat(folder.Path); err != nil {
			continue
		}
		if err := os.RemoveAll(folder.Path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirDelete, "removing existing folder %s", folder.Path)
		}
	}

	clearStaleFolders(reader, toDir, logger)

	var manifests []string
	for _, file := range reader.File {
		dest := paths.SanitizeArchivePath(toDir, file.Name)

		if toc.IsManifest(dest, toDir) {
			manifests = append(manifests, dest)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, constants.DirPermissions); err != nil {
				return nil, errors.Wrapf(err, errors.ErrDirCreate, "creating directory %s", dest)
			}
			continue
		}

		if err := writeEntry(file, dest); err != nil {
			return nil, err
		}
	}

	return manifests, nil
}

// clearStaleFolders deletes every existing top-level folder the archive is
// about to lay down. These may be left over from a manual install the
// registry never tracked; extraction must not merge with them. Failures
// here are logged and swallowed.
func clearStaleFolders(reader *zip.ReadCloser, toDir string, logger zerolog.Logger) {
	seen := make(map[string]struct{})
	for _, file := range reader.File {
		segment, ok := paths.TopLevelSegment(file.Name)
		if !ok {
			continue
		}
		if _, dup := seen[segment]; dup {
			continue
		}
		seen[segment] = struct{}{}

		path := filepath.Join(toDir, segment)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to clear stale folder")
		}
	}
}

// writeEntry writes one archive file entry to dest, creating parent
// directories and overwriting any existing file.
func writeEntry(file *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), constants.DirPermissions); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating parent of %s", dest)
	}

	in, err := file.Open()
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveRead, "reading entry %s", file.Name)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "creating %s", dest)
	}

	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", dest)
	}

	return nil
}
