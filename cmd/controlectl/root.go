package main

import (
	"github.com/spf13/cobra"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/cli"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/config"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/store"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "controlectl",
	Short: "Maintenance tooling for the controle data store",
	Long:  `Seed demo data, export the raw blobs to a JSON file and import them back.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(seedCmd, exportCmd, importCmd)
}

// openStore loads env + config and opens the configured backend.
func openStore() (*store.Store, *config.Config, error) {
	cli.LoadEnvFile()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	st, err := store.Open(cfg.DataBackend, cfg.SQLiteDBPath, cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	return st, cfg, nil
}
