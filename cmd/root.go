package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	dbPath   string
	screpBin string
	noCache  bool
)

var rootCmd = &cobra.Command{
	Use:   "screpview",
	Short: "StarCraft replay viewer",
	Long:  "Decode StarCraft: Brood War replay files with screp and display matchups, teams, spawns and chat in the terminal.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".screpview", "cache.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to the raw-output cache database")
	rootCmd.PersistentFlags().StringVar(&screpBin, "screp", "screp", "path to the screp binary")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "always re-run screp, ignoring the cache")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dropCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
