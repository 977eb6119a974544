package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hearthkeep/hearthkeep/internal/version"
	"github.com/hearthkeep/hearthkeep/pkg/config"
	"github.com/hearthkeep/hearthkeep/pkg/logging"
	"github.com/hearthkeep/hearthkeep/pkg/style"
)

var (
	verbosity  int
	configFile string

	rootCmd = &cobra.Command{
		Use:   "hearthkeep",
		Short: "A World of Warcraft addon manager",
		Long: `hearthkeep manages the on-disk lifecycle of addons: installing downloaded
archives into the AddOns directory, uninstalling addons and their folders,
and cleaning up orphaned SavedVariables files.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			config.Initialize(cfg)

			// The flag wins over the configured verbosity
			if verbosity == 0 {
				verbosity = cfg.Logging.Verbosity
			}
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(style.Error.Render("Error: ") + err.Error())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/hearthkeep/config.toml)")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(cleanStateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hearthkeep version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
