// pkg/registry/registry_test.go
// TEST TYPE: Unit Test (in-memory filesystem)
// PURPOSE: Registry persistence round-trips and mutation

package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthkeep/hearthkeep/pkg/filesystem"
	"github.com/hearthkeep/hearthkeep/pkg/types"
)

func registryPath() string {
	return filepath.Join("/", "data", "hearthkeep", "addons.toml")
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	r, err := Load(filesystem.NewMemory(), registryPath())
	require.NoError(t, err)
	assert.Empty(t, r.List())
}

func TestSaveAndReload(t *testing.T) {
	fs := filesystem.NewMemory()

	r, err := Load(fs, registryPath())
	require.NoError(t, err)

	r.Upsert(types.Addon{
		Name:            "Addon A",
		PrimaryFolderID: "AddonA",
		Version:         "1.2.0",
		Folders: []types.AddonFolder{
			{ID: "AddonA", Path: "/addons/AddonA", Title: "Addon A"},
			{ID: "AddonA_Options", Path: "/addons/AddonA_Options"},
		},
	})
	r.Upsert(types.Addon{Name: "Addon B", PrimaryFolderID: "AddonB"})
	require.NoError(t, r.Save())

	reloaded, err := Load(fs, registryPath())
	require.NoError(t, err)

	list := reloaded.List()
	require.Len(t, list, 2)
	assert.Equal(t, "AddonA", list[0].PrimaryFolderID)
	assert.Equal(t, "1.2.0", list[0].Version)
	require.Len(t, list[0].Folders, 2)
	assert.Equal(t, "AddonA_Options", list[0].Folders[1].ID)
	assert.Equal(t, "AddonB", list[1].PrimaryFolderID)
}

func TestUpsertReplaces(t *testing.T) {
	r, err := Load(filesystem.NewMemory(), registryPath())
	require.NoError(t, err)

	r.Upsert(types.Addon{PrimaryFolderID: "AddonA", Version: "1.0"})
	r.Upsert(types.Addon{PrimaryFolderID: "AddonA", Version: "2.0"})

	a, ok := r.Get("AddonA")
	require.True(t, ok)
	assert.Equal(t, "2.0", a.Version)
	assert.Len(t, r.List(), 1)
}

func TestRemove(t *testing.T) {
	r, err := Load(filesystem.NewMemory(), registryPath())
	require.NoError(t, err)

	r.Upsert(types.Addon{PrimaryFolderID: "AddonA"})

	removed, ok := r.Remove("AddonA")
	require.True(t, ok)
	assert.Equal(t, "AddonA", removed.PrimaryFolderID)

	_, ok = r.Remove("AddonA")
	assert.False(t, ok)
	assert.Empty(t, r.List())
}

func TestAllFolders(t *testing.T) {
	r, err := Load(filesystem.NewMemory(), registryPath())
	require.NoError(t, err)

	r.Upsert(types.Addon{
		PrimaryFolderID: "AddonB",
		Folders:         []types.AddonFolder{{ID: "AddonB", Path: "/addons/AddonB"}},
	})
	r.Upsert(types.Addon{
		PrimaryFolderID: "AddonA",
		Folders: []types.AddonFolder{
			{ID: "AddonA", Path: "/addons/AddonA"},
			// Duplicate folder shared with another entry collapses
			{ID: "AddonB", Path: "/addons/AddonB"},
		},
	})

	assert.Equal(t, []types.AddonFolder{
		{ID: "AddonA", Path: "/addons/AddonA"},
		{ID: "AddonB", Path: "/addons/AddonB"},
	}, r.AllFolders())
}

func TestLoadCorruptFile(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll(filepath.Dir(registryPath()), 0o755))
	require.NoError(t, fs.WriteFile(registryPath(), []byte("not [valid toml"), 0o644))

	_, err := Load(fs, registryPath())
	require.Error(t, err)
}
