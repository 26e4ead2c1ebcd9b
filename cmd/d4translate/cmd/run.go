package cmd

import (
	"github.com/spf13/cobra"

	"d4-translate/internal/fileio"
	"d4-translate/internal/translate/runner"
)

var (
	reportPath string
	strictRun  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Translate every build file in the input directory",
	Long: `Translate every build JSON in BUILDS_DIR into OUT_DIR. The output
directory is cleared and repopulated. By default a failed build is logged
and skipped; --strict aborts the whole run on the first failure.`,
	RunE: runBatch,
}

func init() {
	runCmd.Flags().StringVar(&reportPath, "report", "", "write an xlsx run report to this path")
	runCmd.Flags().BoolVar(&strictRun, "strict", false, "abort the run on the first failed build")
	RootCmd.AddCommand(runCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, logger, tr, err := setup()
	if err != nil {
		return err
	}

	r := runner.New(tr, cfg.Workers, strictRun, logger)
	rep, err := r.Run(cmd.Context(), cfg.BuildsDir, cfg.OutDir)
	if err != nil {
		return err
	}

	if reportPath != "" {
		if err := fileio.WriteReport(reportPath, rep); err != nil {
			return err
		}
		logger.Info().Str("path", reportPath).Msg("report written")
	}
	return nil
}
