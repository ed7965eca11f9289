package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/money"
)

var (
	flagColor     string
	flagEditLabel string
	flagEditColor string
	flagEditAmt   string
)

var addCmd = &cobra.Command{
	Use:   "add <label> <amount>",
	Short: "Add a spending item to the board",
	Example: `  spendplan add Rent 1500
  spendplan add "Groceries" 320.50 --color "#b0e57c"`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

var editCmd = &cobra.Command{
	Use:   "edit <item>",
	Short: "Edit a spending item (by position, id prefix or label)",
	Example: `  spendplan edit 2 --amount 99.90
  spendplan edit Rent --label "Rent + condo" --color "#ffdab9"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var rmCmd = &cobra.Command{
	Use:     "rm <item>",
	Aliases: []string{"remove"},
	Short:   "Remove a spending item (by position, id prefix or label)",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	addCmd.Flags().StringVarP(&flagColor, "color", "c", "", "Item color as #rrggbb (random palette color when empty)")

	editCmd.Flags().StringVarP(&flagEditLabel, "label", "l", "", "New label")
	editCmd.Flags().StringVarP(&flagEditColor, "color", "c", "", "New color as #rrggbb")
	editCmd.Flags().StringVarP(&flagEditAmt, "amount", "a", "", "New amount")

	rootCmd.AddCommand(addCmd, editCmd, rmCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	amount, err := money.Parse(args[1])
	if err != nil {
		return err
	}

	ws, closeWS, err := openWorkspace()
	if err != nil {
		return err
	}
	defer closeWS()

	it, err := ws.AddItem(model.ItemInput{Label: args[0], Color: flagColor, Amount: amount})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Added %s (%s) %s\n", it.Label, money.Format(it.Amount, currency()), it.Color)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	var patch model.ItemPatch
	if cmd.Flags().Changed("label") {
		label := strings.TrimSpace(flagEditLabel)
		patch.Label = &label
	}
	if cmd.Flags().Changed("color") {
		patch.Color = &flagEditColor
	}
	if cmd.Flags().Changed("amount") {
		amount, err := money.Parse(flagEditAmt)
		if err != nil {
			return err
		}
		patch.Amount = &amount
	}
	if patch.IsEmpty() {
		return fmt.Errorf("nothing to change: pass --label, --color or --amount")
	}

	ws, closeWS, err := openWorkspace()
	if err != nil {
		return err
	}
	defer closeWS()

	it, err := ws.EditItem(args[0], patch)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Updated %s (%s) %s\n", it.Label, money.Format(it.Amount, currency()), it.Color)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	ws, closeWS, err := openWorkspace()
	if err != nil {
		return err
	}
	defer closeWS()

	it, err := ws.RemoveItem(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Removed %s\n", it.Label)
	return nil
}
