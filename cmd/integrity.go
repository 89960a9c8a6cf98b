package cmd

import (
	"context"

	"school-admin/core/storage"
	"school-admin/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage and database",
	Long:  `Checks that every scanned disk has its upload root and that the file_records table matches the model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the upload roots",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the file_records table against the model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, schemaCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing upload roots")
}

func runIntegrityChecks(ctx context.Context, runStructure, runSchema bool) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.close()
	logg := rt.logger

	if err := rt.mountDisks(); err != nil {
		return err
	}

	if runSchema {
		if err := rt.connectDatabase(); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		}
	}

	svc := integrity.NewService(rt.disks, rt.cfg.Reconcile.Disks, rt.cfg.Reconcile.RootPrefix, rt.db, logg)
	if rt.cfg.Storage.ObjectDisk != "" {
		client, err := storage.NewClient(rt.cfg.Storage)
		if err != nil {
			return err
		}
		svc.WithBucket(client, rt.cfg.Storage.Bucket)
	}

	if runStructure {
		if err := checkStructure(ctx, svc, logg); err != nil {
			return err
		}
	}

	if runSchema {
		checkSchema(svc, logg)
	}
	return nil
}

func checkStructure(ctx context.Context, svc *integrity.Service, logg *zap.Logger) error {
	if ok, err := svc.CheckBucket(ctx); err != nil {
		logg.Error("Bucket check failed", zap.Error(err))
	} else if ok {
		logg.Info("Bucket is reachable.")
	}

	logg.Info("Checking upload roots...")
	missing, err := svc.CheckStructure(ctx)
	if err != nil {
		return err
	}

	if len(missing) == 0 {
		logg.Info("Structure is intact.")
		return nil
	}

	logg.Warn("Missing upload roots detected", zap.Strings("disks", missing))
	if !fixFlag {
		logg.Info("Run with --fix to create missing upload roots.")
		return nil
	}

	logg.Info("Fixing missing upload roots...")
	if err := svc.FixStructure(ctx, missing); err != nil {
		return err
	}
	logg.Info("Structure fixed successfully.")
	return nil
}

func checkSchema(svc *integrity.Service, logg *zap.Logger) {
	logg.Info("Checking file_records schema...")
	report, err := svc.CheckSchema()
	if err != nil {
		logg.Error("Schema check failed", zap.Error(err))
		return
	}

	if report.Matched {
		logg.Info("Schema matches the model.")
		return
	}

	logg.Warn("Schema mismatches found")
	for table, tbl := range report.Tables {
		if tbl.Status != "ok" {
			if len(tbl.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
			}
			if len(tbl.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
			}
		}
	}
	for _, e := range report.Errors {
		logg.Error("Inspection Error", zap.String("error", e))
	}
}
