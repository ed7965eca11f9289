package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/spendplan/internal/money"
)

var availableCmd = &cobra.Command{
	Use:   "available <amount>",
	Short: "Set the amount available to spend",
	Example: `  spendplan available 5000
  spendplan available "R$ 4.250,00"`,
	Args: cobra.ExactArgs(1),
	RunE: runAvailable,
}

var titleCmd = &cobra.Command{
	Use:   "title <title>",
	Short: "Rename the board",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTitle,
}

var resetCmd = &cobra.Command{
	Use:     "reset",
	Aliases: []string{"new"},
	Short:   "Start a new empty board (saved planners are kept)",
	Args:    cobra.NoArgs,
	RunE:    runReset,
}

func init() {
	rootCmd.AddCommand(availableCmd, titleCmd, resetCmd)
}

func runAvailable(cmd *cobra.Command, args []string) error {
	amount, err := money.Parse(args[0])
	if err != nil {
		return err
	}

	ws, closeWS, err := openWorkspace()
	if err != nil {
		return err
	}
	defer closeWS()

	if err := ws.SetAvailable(amount); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Available to spend: %s\n", money.Format(amount, currency()))
	return nil
}

func runTitle(cmd *cobra.Command, args []string) error {
	ws, closeWS, err := openWorkspace()
	if err != nil {
		return err
	}
	defer closeWS()

	if err := ws.SetTitle(strings.Join(args, " ")); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Title: %s\n", ws.State().Title)
	return nil
}

func runReset(cmd *cobra.Command, _ []string) error {
	ws, closeWS, err := openWorkspace()
	if err != nil {
		return err
	}
	defer closeWS()

	if err := ws.New(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "  Started a new board")
	return nil
}
