// Package cmd implements the spendplan CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/spendplan/internal/config"
	"github.com/theirongolddev/spendplan/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Storage]")
	fmt.Fprintf(out, "    Default store: %s\n", appCfg.Storage.DefaultStore)
	fmt.Fprintf(out, "    Active store:  %s\n", storeKind())
	fmt.Fprintf(out, "    Database:      %s\n", dbPath())
	fmt.Fprintf(out, "    Records:       %s\n", storedRecords())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Display]")
	fmt.Fprintf(out, "    Currency: %s\n", currency().Code)
	fmt.Fprintf(out, "    Theme:    %s\n", appCfg.Display.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Log]")
	fmt.Fprintf(out, "    Level:    %s\n", config.LogLevel(appCfg))
	fmt.Fprintf(out, "    TUI log:  %s\n", config.LogPath())
	return nil
}

// storedRecords counts the keys in the local database without creating it.
func storedRecords() string {
	path := dbPath()
	if _, err := os.Stat(path); err != nil {
		return "none (database not created yet)"
	}
	db, err := store.Open(path)
	if err != nil {
		return "unavailable: " + err.Error()
	}
	defer db.Close()

	n, err := db.Count()
	if err != nil {
		return "unavailable: " + err.Error()
	}
	return strconv.Itoa(n)
}
