package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/spendplan/internal/cli"
	"github.com/theirongolddev/spendplan/internal/model"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the item color palette",
	Args:  cobra.NoArgs,
	RunE:  runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	for i, c := range model.Palette {
		fmt.Fprintf(out, "  %s %s", cli.Swatch(c), c)
		if (i+1)%5 == 0 {
			fmt.Fprintln(out)
		} else {
			fmt.Fprint(out, "   ")
		}
	}
	fmt.Fprintln(out)
	return nil
}
