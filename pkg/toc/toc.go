// Package toc locates and parses addon manifest (toc) files.
//
// A manifest defines the identity of the top-level folder that contains it:
// the file name with the extension stripped is the folder's stable id. Only
// manifests sitting directly below the installation root count; deeper toc
// files belong to embedded libraries and are ignored.
package toc

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hearthkeep/hearthkeep/pkg/constants"
	"github.com/hearthkeep/hearthkeep/pkg/types"
)

// colorCodes matches the inline color escapes addon authors embed in Title
// directives, e.g. "|cff4785ffHearth|r".
var colorCodes = regexp.MustCompile(`\|c[0-9a-fA-F]{8}|\|r`)

// IsManifest reports whether an extracted file path is a manifest of a
// top-level addon folder: the extension matches and the path relative to
// root has exactly two segments (folder name + file name).
func IsManifest(path, root string) bool {
	if filepath.Ext(path) != constants.ManifestExt {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}

	return len(strings.Split(rel, string(filepath.Separator))) == 2
}

// Parse derives an AddonFolder from a manifest file on disk. The id is the
// file name with the extension stripped; a multi-toc suffix that extends the
// containing folder's name ("AddonA-Lib.toc" inside "AddonA/") collapses to
// the folder name, so every manifest of a multi-toc package resolves to the
// same identity. Title and Version come from the manifest's directives when
// present. The second return is false when the path is not a readable
// manifest, which callers treat as "skip", not as an error.
func Parse(path string) (types.AddonFolder, bool) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, constants.ManifestExt) {
		return types.AddonFolder{}, false
	}

	id := strings.TrimSuffix(base, constants.ManifestExt)
	if id == "" {
		return types.AddonFolder{}, false
	}

	folderName := filepath.Base(filepath.Dir(path))
	if id != folderName {
		for _, sep := range []string{"-", "_"} {
			if strings.HasPrefix(id, folderName+sep) {
				id = folderName
				break
			}
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return types.AddonFolder{}, false
	}
	defer func() { _ = file.Close() }()

	folder := types.AddonFolder{
		ID:   id,
		Path: filepath.Dir(path),
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "##") {
			continue
		}
		directive, value, found := strings.Cut(strings.TrimPrefix(line, "##"), ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(directive)) {
		case "title":
			folder.Title = colorCodes.ReplaceAllString(value, "")
		case "version":
			folder.Version = value
		}
	}
	// Scanner errors mean undecodable content; id and path are already
	// derived from the name, so the folder is still valid.

	return folder, true
}
