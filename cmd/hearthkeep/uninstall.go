package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthkeep/hearthkeep/pkg/addon"
	"github.com/hearthkeep/hearthkeep/pkg/config"
	"github.com/hearthkeep/hearthkeep/pkg/errors"
	"github.com/hearthkeep/hearthkeep/pkg/filesystem"
	"github.com/hearthkeep/hearthkeep/pkg/registry"
	"github.com/hearthkeep/hearthkeep/pkg/style"
)

var uninstallSavedVariables bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <addon>",
	Short: "Remove an installed addon and its folders",
	Long: `Uninstall deletes every folder the addon owns from the AddOns directory
and drops it from the registry. With --saved-variables its SavedVariables
files under the configured state directory are removed as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runUninstall,
}

func init() {
	uninstallCmd.Flags().BoolVar(&uninstallSavedVariables, "saved-variables", false, "Also delete the addon's SavedVariables files")
}

func runUninstall(cmd *cobra.Command, args []string) error {
	fs := filesystem.NewOS()
	reg, err := registry.Load(fs, config.RegistryPath())
	if err != nil {
		return err
	}

	record, ok := reg.Get(args[0])
	if !ok {
		return errors.Newf(errors.ErrNotFound, "addon %q is not in the registry", args[0])
	}

	if err := addon.Delete(fs, record.Folders); err != nil {
		return err
	}

	if uninstallSavedVariables {
		stateDir := config.Get().Paths.StateDir
		if stateDir == "" {
			return errors.New(errors.ErrInvalidInput, "no state directory configured (set paths.state_dir)")
		}
		if err := addon.DeleteSavedVariables(record.Folders, stateDir); err != nil {
			return err
		}
	}

	reg.Remove(record.PrimaryFolderID)
	if err := reg.Save(); err != nil {
		return err
	}

	fmt.Println(style.Success.Render("Uninstalled ") + record.Name)
	return nil
}
