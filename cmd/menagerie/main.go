package main

import (
	"os"

	"github.com/spf13/cobra"

	"menagerie/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "menagerie",
	Short:   "File-backed animal record service",
	Long: `Menagerie is a small HTTP service exposing CRUD-style access to a
file-backed collection of animal records, plus static HTML pages.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFiles, _ := cmd.Flags().GetStringArray("config")

		cfg, err := config.Load(configFiles, cmd.Flags())
		if err != nil {
			return err
		}

		setupLogging(cfg)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringArray("config", nil, "config file path (default: ./config.yaml, repeatable)")
	rootCmd.PersistentFlags().String("store-path", "", "animal store file path (default: ./animals.json, env: MENAGERIE_STORE_PATH)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
