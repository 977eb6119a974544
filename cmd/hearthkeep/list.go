package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hearthkeep/hearthkeep/pkg/config"
	"github.com/hearthkeep/hearthkeep/pkg/filesystem"
	"github.com/hearthkeep/hearthkeep/pkg/registry"
	"github.com/hearthkeep/hearthkeep/pkg/style"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed addons",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := registry.Load(filesystem.NewOS(), config.RegistryPath())
	if err != nil {
		return err
	}

	addons := reg.List()
	if len(addons) == 0 {
		fmt.Println(style.Muted.Render("No addons installed."))
		return nil
	}

	rows := pterm.TableData{{"Addon", "Version", "Folders"}}
	for _, a := range addons {
		folders := make([]string, 0, len(a.Folders))
		for _, folder := range a.Folders {
			folders = append(folders, folder.ID)
		}
		version := a.Version
		if version == "" {
			version = "-"
		}
		rows = append(rows, []string{a.Name, version, strings.Join(folders, ", ")})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
