package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/spendplan/internal/cli"
	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/planner"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the board as a planner, or update the planner it was loaded from",
	Args:  cobra.NoArgs,
	RunE:  runSave,
}

var duplicateCmd = &cobra.Command{
	Use:   "duplicate",
	Short: "Save a copy of the loaded planner and switch to it",
	Args:  cobra.NoArgs,
	RunE:  runDuplicate,
}

var plannersCmd = &cobra.Command{
	Use:     "planners",
	Aliases: []string{"ls", "list"},
	Short:   "List saved planners",
	Args:    cobra.NoArgs,
	RunE:    runPlanners,
}

var loadCmd = &cobra.Command{
	Use:   "load <planner>",
	Short: "Load a saved planner (by id, id prefix or title) onto the board",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <planner>",
	Short: "Delete a saved planner (by id, id prefix or title)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(saveCmd, duplicateCmd, plannersCmd, loadCmd, deleteCmd)
}

func runSave(cmd *cobra.Command, _ []string) error {
	ws, closeWS, err := openWorkspace()
	if err != nil {
		return err
	}
	defer closeWS()

	wasSaved := ws.State().IsSaved()
	p, err := ws.Save()
	if err != nil {
		return err
	}
	verb := "Saved"
	if wasSaved {
		verb = "Updated"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %s %q (%s)\n", verb, p.Title, cli.FormatShortID(p.ID))
	return nil
}

func runDuplicate(cmd *cobra.Command, _ []string) error {
	ws, closeWS, err := openWorkspace()
	if err != nil {
		return err
	}
	defer closeWS()

	p, err := ws.Duplicate()
	if errors.Is(err, planner.ErrNotSaved) {
		return fmt.Errorf("%w: run `spendplan save` first", err)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Duplicated as %q (%s)\n", p.Title, cli.FormatShortID(p.ID))
	return nil
}

func runPlanners(cmd *cobra.Command, _ []string) error {
	ws, closeWS, err := openWorkspace()
	if err != nil {
		return err
	}
	defer closeWS()

	out := cmd.OutOrStdout()
	planners := ws.Planners()
	if len(planners) == 0 {
		fmt.Fprintln(out, "\n  No saved planners. Save the board with: spendplan save")
		return nil
	}

	active := ws.State()
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:      "Planners (" + cli.FormatCount(len(planners), "planner") + ")",
		Headers:    []string{"", "ID", "Title", "Items", "Spending", "Available"},
		Rows:       plannerRows(planners, active, currency()),
		RightAlign: []bool{false, false, false, true, true, true},
	}))
	fmt.Fprintln(out)
	return nil
}

func plannerRows(planners []model.Planner, active model.State, cur money.Currency) [][]string {
	rows := make([][]string, len(planners))
	for i, p := range planners {
		marker := ""
		if active.IsSaved() && active.ID == p.ID {
			marker = "●"
		}
		rows[i] = []string{
			marker,
			cli.FormatShortID(p.ID),
			cli.Truncate(p.Title, 32),
			strconv.Itoa(len(p.Spending)),
			cli.FormatMoney(model.TotalAmount(p.Spending), cur),
			cli.FormatMoney(p.AvailableToSpend, cur),
		}
	}
	return rows
}

func runLoad(cmd *cobra.Command, args []string) error {
	ws, closeWS, err := openWorkspace()
	if err != nil {
		return err
	}
	defer closeWS()

	if _, err := ws.Load(args[0]); err != nil {
		return err
	}
	printBoard(cmd.OutOrStdout(), ws)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	ws, closeWS, err := openWorkspace()
	if err != nil {
		return err
	}
	defer closeWS()

	p, err := ws.Delete(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Deleted %q (%s)\n", p.Title, cli.FormatShortID(p.ID))
	return nil
}
