package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunFiles bool
	jsonFiles   bool
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile the file registry with the storage disks",
}

// filesReconcileCmd runs both reconciliation passes.
var filesReconcileCmd = &cobra.Command{
	Use:   "files",
	Short: "Remove records of missing files and delete orphaned files",
	Long: `Reconcile uploaded files between the file_records table and the storage disks.

Records whose file no longer exists are soft-deleted. Files under the upload
root that no record references are deleted, thumbnails excepted.

Examples:
  # Report only
  reconcile files --dry-run

  # Apply and print a JSON report
  reconcile files --json`,
	RunE: runFilesReconcile,
}

func init() {
	reconcileCmd.AddCommand(filesReconcileCmd)

	filesReconcileCmd.Flags().BoolVar(&dryRunFiles, "dry-run", false, "Report divergences without changing anything")
	filesReconcileCmd.Flags().BoolVar(&jsonFiles, "json", false, "Print the report as JSON")

	RootCmd.AddCommand(reconcileCmd)
}

func runFilesReconcile(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.close()

	if err := rt.connectDatabase(); err != nil {
		return err
	}
	if err := rt.mountDisks(); err != nil {
		return err
	}

	report, err := rt.engine().Reconcile(cmd.Context(), dryRunFiles)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonFiles {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else {
		for _, line := range report.Lines() {
			fmt.Fprintln(out, line)
		}
	}

	rt.logger.Info("Reconciliation finished",
		zap.Bool("dry_run", report.DryRun),
		zap.Int("missing", report.Missing.Count),
		zap.Int("orphaned", report.Orphaned.Count),
		zap.Duration("duration", report.Duration),
	)

	if report.Failed() {
		return fmt.Errorf("reconciliation incomplete: %d disk(s) failed",
			len(report.Missing.Failures)+len(report.Orphaned.Failures))
	}
	return nil
}
