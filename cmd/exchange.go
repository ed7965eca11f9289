package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/spendplan/internal/cli"
	"github.com/theirongolddev/spendplan/internal/planner"
)

var (
	flagFormat string
	flagOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write saved planners as JSON or YAML",
	Example: `  spendplan export > planners.json
  spendplan export --format yaml -o planners.yaml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add the planners from an export file (new ids are assigned)",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "json or yaml (default from --output extension, else json)")
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default stdout)")
	importCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "json or yaml (default from file extension)")
	rootCmd.AddCommand(exportCmd, importCmd)
}

func exchangeFormat(path string) (planner.Format, error) {
	if flagFormat != "" {
		return planner.ParseFormat(flagFormat)
	}
	return planner.FormatForPath(path), nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := exchangeFormat(flagOutput)
	if err != nil {
		return err
	}

	ws, closeWS, err := openWorkspace()
	if err != nil {
		return err
	}
	defer closeWS()

	planners := ws.Planners()
	if flagOutput == "" {
		return planner.Export(cmd.OutOrStdout(), planners, format)
	}

	f, err := os.Create(flagOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagOutput, err)
	}
	if err := planner.Export(f, planners, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", flagOutput, err)
	}

	log.WithFields(log.Fields{"path": flagOutput, "count": len(planners)}).Info("exported planners")
	fmt.Fprintf(cmd.ErrOrStderr(), "  Exported %s to %s\n", cli.FormatCount(len(planners), "planner"), flagOutput)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := exchangeFormat(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	planners, err := planner.Decode(f, format)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	ws, closeWS, err := openWorkspace()
	if err != nil {
		return err
	}
	defer closeWS()

	added, err := ws.Import(planners)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Imported %s from %s\n", cli.FormatCount(len(added), "planner"), path)
	return nil
}
