// Package registry persists the set of installed addons.
//
// The registry is the caller-side record the installer's folder lists flow
// into: install upserts an addon with the folders the archive defined,
// uninstall removes it. It is a plain TOML file under the XDG data
// directory, written atomically via a temp file and rename.
package registry

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/hearthkeep/hearthkeep/pkg/constants"
	"github.com/hearthkeep/hearthkeep/pkg/errors"
	"github.com/hearthkeep/hearthkeep/pkg/logging"
	"github.com/hearthkeep/hearthkeep/pkg/types"
)

// document is the on-disk shape of the registry file
type document struct {
	Addons []types.Addon `toml:"addons"`
}

// Registry holds the installed addons for one installation root
type Registry struct {
	fs     types.FS
	path   string
	addons map[string]types.Addon
}

// Load reads the registry from path. A missing file yields an empty
// registry, not an error.
func Load(fs types.FS, path string) (*Registry, error) {
	r := &Registry{
		fs:     fs,
		path:   path,
		addons: make(map[string]types.Addon),
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, errors.Wrapf(err, errors.ErrRegistryLoad, "reading registry %s", path)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegistryLoad, "parsing registry %s", path)
	}

	for _, a := range doc.Addons {
		r.addons[a.PrimaryFolderID] = a
	}

	return r, nil
}

// Get returns the addon with the given primary folder id
func (r *Registry) Get(primaryFolderID string) (types.Addon, bool) {
	a, ok := r.addons[primaryFolderID]
	return a, ok
}

// List returns all addons ordered by primary folder id
func (r *Registry) List() []types.Addon {
	out := make([]types.Addon, 0, len(r.addons))
	for _, a := range r.addons {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PrimaryFolderID < out[j].PrimaryFolderID
	})
	return out
}

// Upsert records an addon, replacing any previous entry with the same
// primary folder id.
func (r *Registry) Upsert(a types.Addon) {
	r.addons[a.PrimaryFolderID] = a
}

// Remove drops an addon from the registry and returns it
func (r *Registry) Remove(primaryFolderID string) (types.Addon, bool) {
	a, ok := r.addons[primaryFolderID]
	if ok {
		delete(r.addons, primaryFolderID)
	}
	return a, ok
}

// AllFolders returns the folders of every registered addon, ordered and
// deduplicated.
func (r *Registry) AllFolders() []types.AddonFolder {
	var folders []types.AddonFolder
	for _, a := range r.addons {
		folders = append(folders, a.Folders...)
	}
	types.SortFolders(folders)
	return types.DedupFolders(folders)
}

// Save writes the registry back to disk atomically
func (r *Registry) Save() error {
	logger := logging.GetLogger("registry")

	doc := document{Addons: r.List()}
	data, err := toml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrRegistrySave, "encoding registry")
	}

	if err := r.fs.MkdirAll(filepath.Dir(r.path), constants.DirPermissions); err != nil {
		return errors.Wrapf(err, errors.ErrRegistrySave, "creating registry directory for %s", r.path)
	}

	tmp := r.path + ".tmp"
	if err := r.fs.WriteFile(tmp, data, constants.FilePermissions); err != nil {
		return errors.Wrapf(err, errors.ErrRegistrySave, "writing %s", tmp)
	}
	if err := r.fs.Rename(tmp, r.path); err != nil {
		return errors.Wrapf(err, errors.ErrRegistrySave, "replacing %s", r.path)
	}

	logger.Debug().Str("path", r.path).Int("addons", len(r.addons)).Msg("Registry saved")
	return nil
}
