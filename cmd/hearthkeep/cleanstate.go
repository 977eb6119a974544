package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthkeep/hearthkeep/pkg/addon"
	"github.com/hearthkeep/hearthkeep/pkg/config"
	"github.com/hearthkeep/hearthkeep/pkg/errors"
	"github.com/hearthkeep/hearthkeep/pkg/style"
	"github.com/hearthkeep/hearthkeep/pkg/types"
)

var cleanStateCmd = &cobra.Command{
	Use:   "clean-state <id>...",
	Short: "Delete SavedVariables files for the given addon ids",
	Long: `Clean-state walks the configured state directory and deletes every
SavedVariables file named after one of the given ids ("<id>.lua" or
"<id>.lua.bak"). Use it to clear state left behind by addons that were
removed outside hearthkeep.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCleanState,
}

func runCleanState(cmd *cobra.Command, args []string) error {
	stateDir := config.Get().Paths.StateDir
	if stateDir == "" {
		return errors.New(errors.ErrInvalidInput, "no state directory configured (set paths.state_dir)")
	}

	folders := make([]types.AddonFolder, 0, len(args))
	for _, id := range args {
		folders = append(folders, types.AddonFolder{ID: id})
	}

	if err := addon.DeleteSavedVariables(folders, stateDir); err != nil {
		return err
	}

	fmt.Println(style.Success.Render("Cleaned ") + "saved variables for " +
		style.Muted.Render(fmt.Sprintf("%d id(s)", len(args))))
	return nil
}
