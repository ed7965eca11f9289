package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/spendplan/internal/cli"
	"github.com/theirongolddev/spendplan/internal/planner"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the active board: totals, balance and spending breakdown",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ws, closeWS, err := openWorkspace()
	if err != nil {
		return err
	}
	defer closeWS()

	printBoard(cmd.OutOrStdout(), ws)
	return nil
}

// printBoard renders the active board the way the summary command shows it.
func printBoard(w io.Writer, ws *planner.Workspace) {
	st := ws.State()
	s := ws.Summary()
	cur := currency()

	title := st.Title
	if title == "" {
		title = "Untitled planner"
	}
	if st.IsSaved() {
		title += "  · " + cli.FormatShortID(st.ID)
	} else {
		title += "  · draft"
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(title))
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderSummary(s, cur))

	if s.IsAvailableDefined {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  "+cli.RenderBudgetBar(s, 40))
	}

	if len(st.Spending) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  No spending yet. Add one with: spendplan add <label> <amount>")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:      "Spending",
		Headers:    []string{"#", "", "Label", "ID", "Amount", "Share"},
		Rows:       cli.ItemRows(s, cur),
		RightAlign: []bool{true, false, false, false, true, true},
	}))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+cli.RenderShareBar(s, 53))
	fmt.Fprintln(w)
}
