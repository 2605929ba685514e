package cmd

import (
	"context"
	"fmt"

	"eox-sync/feature/eox"
	"eox-sync/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Perform integrity checks on database, storage and the Cisco API",
	Long:  `Checks that the database schema holds every synchronized column, that the archive bucket exists and that the Cisco EoX API is reachable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd.Context(), true, true, true)
	},
}

// checkDatabaseCmd represents the check database command
var checkDatabaseCmd = &cobra.Command{
	Use:   "database",
	Short: "Check the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd.Context(), true, false, false)
	},
}

// checkStorageCmd represents the check storage command
var checkStorageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the archive bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd.Context(), false, true, false)
	},
}

// checkAPICmd represents the check api command
var checkAPICmd = &cobra.Command{
	Use:   "api",
	Short: "Check the product blacklist and connectivity to the Cisco EoX API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.AddCommand(checkDatabaseCmd, checkStorageCmd, checkAPICmd)

	checkStorageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing bucket")
}

func runChecks(ctx context.Context, runDatabase, runStorage, runAPI bool) error {
	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.close()
	logg := rt.logger

	svc := integrity.NewService(rt.db, rt.store, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region, rt.client, logg)
	failed := false

	if runDatabase {
		logg.Info("Checking database schema...")
		report, err := svc.CheckDatabase()
		if err != nil {
			return fmt.Errorf("database check failed: %w", err)
		}
		if report.Matched {
			logg.Info("Database schema is intact.")
		} else {
			failed = true
			for table, tbl := range report.Tables {
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing columns detected", zap.String("table", table), zap.Strings("missing", tbl.MissingColumns))
				}
			}
			for _, e := range report.Errors {
				logg.Warn("Schema inspection failed", zap.String("error", e))
			}
		}
	}

	if runStorage {
		logg.Info("Checking archive bucket...")
		report, err := svc.CheckStorage(ctx)
		if err != nil {
			return fmt.Errorf("storage check failed: %w", err)
		}

		switch {
		case report.Exists:
			logg.Info("Archive bucket is present.", zap.String("bucket", report.Bucket), zap.Bool("has_pages", report.HasPages))
		case fixFlag:
			logg.Info("Creating archive bucket...", zap.String("bucket", report.Bucket))
			if err := svc.FixStorage(ctx); err != nil {
				return fmt.Errorf("failed to fix storage: %w", err)
			}
			logg.Info("Archive bucket created successfully.")
		default:
			failed = true
			logg.Warn("Archive bucket missing", zap.String("bucket", report.Bucket))
			logg.Info("Run 'check storage --fix' to create it.")
		}
	}

	if runAPI {
		logg.Info("Checking product blacklist...")
		blacklist := eox.ParseBlacklist(rt.cfg.EoX.ProductBlacklistRegex, zap.NewNop())
		if invalid := blacklist.Invalid(); len(invalid) > 0 {
			failed = true
			logg.Warn("Invalid blacklist patterns are ignored", zap.Strings("patterns", invalid))
		} else {
			logg.Info("Product blacklist is valid.", zap.Int("patterns", blacklist.Len()))
		}

		logg.Info("Checking Cisco EoX API...")
		report := svc.CheckAPI(ctx)
		if report.Status == "ok" {
			logg.Info("Cisco EoX API is reachable.", zap.Int64("latency_ms", report.LatencyMS))
		} else {
			failed = true
			logg.Warn("Cisco EoX API check failed", zap.String("error", report.Error))
		}
	}

	if failed {
		return fmt.Errorf("integrity checks reported problems")
	}
	return nil
}
