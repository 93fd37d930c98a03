package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/shindan/internal/config"
	"github.com/abhisek/shindan/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "shindan",
	Short: "失業給付・傷病手当金の受給診断",
	Long:  "shindan asks five questions and tells you which unemployment and sickness benefit plan fits you.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SHINDAN_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(resultCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration with this command's flags taking priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openStore opens the database named by cfg: --db flag, then SHINDAN_DB,
// then config.yaml, then the default XDG path.
func openStore(cfg *config.Config) (*store.Store, error) {
	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
