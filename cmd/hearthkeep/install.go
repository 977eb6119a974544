package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hearthkeep/hearthkeep/pkg/addon"
	"github.com/hearthkeep/hearthkeep/pkg/config"
	"github.com/hearthkeep/hearthkeep/pkg/errors"
	"github.com/hearthkeep/hearthkeep/pkg/filesystem"
	"github.com/hearthkeep/hearthkeep/pkg/registry"
	"github.com/hearthkeep/hearthkeep/pkg/style"
	"github.com/hearthkeep/hearthkeep/pkg/types"
)

var installName string

var installCmd = &cobra.Command{
	Use:   "install <archive>",
	Short: "Install an addon from a downloaded archive",
	Long: `Install extracts a downloaded addon archive into the configured AddOns
directory, replacing any previously installed folders of the same addon,
and records the result in the registry. The archive is deleted after a
successful install.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installName, "name", "", "Display name for the addon (defaults to the archive name)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if cfg.Paths.AddonDir == "" {
		return errors.New(errors.ErrInvalidInput, "no addon directory configured (set paths.addon_dir)")
	}

	archivePath, err := filepath.Abs(args[0])
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "resolving %s", args[0])
	}
	fromDir := filepath.Dir(archivePath)
	primaryFolderID := filepath.Base(archivePath)

	fs := filesystem.NewOS()
	reg, err := registry.Load(fs, config.RegistryPath())
	if err != nil {
		return err
	}

	a := types.Addon{
		Name:            installName,
		PrimaryFolderID: primaryFolderID,
	}
	if a.Name == "" {
		a.Name = primaryFolderID
	}
	// A previous install's folders get replaced, so pass them along
	if previous, ok := reg.Get(primaryFolderID); ok {
		a.Folders = previous.Folders
		if a.Name == primaryFolderID && previous.Name != "" {
			a.Name = previous.Name
		}
	}

	folders, err := addon.Install(a, fromDir, cfg.Paths.AddonDir)
	if err != nil {
		return err
	}

	a.Folders = folders
	a.Version = installedVersion(folders)
	reg.Upsert(a)
	if err := reg.Save(); err != nil {
		return err
	}

	fmt.Println(style.Success.Render("Installed ") + a.Name +
		style.Muted.Render(fmt.Sprintf(" (%d folders)", len(folders))))
	for _, folder := range folders {
		fmt.Println("  " + style.Path.Render(folder.Path))
	}
	return nil
}

// installedVersion picks the version of the folder matching the primary id,
// falling back to the first folder that carries one.
func installedVersion(folders []types.AddonFolder) string {
	for _, folder := range folders {
		if folder.Version != "" {
			return folder.Version
		}
	}
	return ""
}
