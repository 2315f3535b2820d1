package cmd

import (
	"context"
	"fmt"

	"asset-editor/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the storage bucket and export database against the definitions",
	Long:  `Runs every integrity check: bucket structure, definition documents, icons and the export table schema.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkAll)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkStructure)
	},
}

// documentsCmd represents the integrity documents command
var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Check that the definition documents exist in the bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkDocuments)
	},
}

// iconsCmd represents the integrity icons command
var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Check that every aura and item icon exists in the bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkIcons)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the export database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkSchema)
	},
}

type checkSet int

const (
	checkStructure checkSet = 1 << iota
	checkDocuments
	checkIcons
	checkSchema

	checkAll = checkStructure | checkDocuments | checkIcons | checkSchema
)

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, documentsCmd, iconsCmd, schemaCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

func runIntegrityChecks(ctx context.Context, which checkSet) error {
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	var issues int
	logg := a.logger

	var db *gorm.DB
	if which&checkSchema != 0 {
		db = a.database()
	}

	svc := integrity.NewService(a.client, a.cfg.Storage, a.cfg.Defs.DocumentKeys(a.cfg.Storage), db, a.catalog(), logg)

	if which&checkStructure != 0 {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			switch {
			case which == checkStructure && fixFlag:
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			case which == checkStructure:
				logg.Info("Run with --fix to create missing folders.")
				issues++
			default:
				issues++
			}
		}
	}

	if which&checkDocuments != 0 {
		logg.Info("Checking definition documents...")
		missing, err := svc.CheckDocuments(ctx)
		if err != nil {
			return fmt.Errorf("documents check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Definition documents are present.")
		} else {
			logg.Warn("Missing definition documents detected", zap.Strings("missing", missing))
			issues++
		}
	}

	if which&checkIcons != 0 {
		logg.Info("Checking icons...")
		report, err := svc.CheckIcons(ctx)
		if err != nil {
			return fmt.Errorf("icon check failed: %w", err)
		}

		for _, m := range report.Missing {
			logg.Warn("Missing icon",
				zap.Stringer("asset_type", m.AssetType),
				zap.Uint32("id", m.ID),
				zap.String("name", m.Name),
				zap.String("key", m.Key))
		}
		for _, b := range report.Blank {
			logg.Warn("Blank icon path",
				zap.Stringer("asset_type", b.AssetType),
				zap.Uint32("id", b.ID),
				zap.String("name", b.Name))
		}
		logg.Info("Icon check completed",
			zap.Int("checked", report.Checked),
			zap.Int("missing", len(report.Missing)),
			zap.Int("blank", len(report.Blank)))
		if len(report.Missing)+len(report.Blank) > 0 {
			issues++
		}
	}

	if which&checkSchema != 0 {
		logg.Info("Checking export schema integrity...")
		report, err := svc.CheckSchema()
		switch {
		case err != nil:
			logg.Error("Export schema check failed", zap.Error(err))
			if which == checkSchema {
				return err
			}
		case report.Matched:
			logg.Info("Export schema matches the row models.")
		default:
			logg.Warn("Export schema mismatches found")
			for table, tbl := range report.Tables {
				if tbl.Status == "ok" {
					continue
				}
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
			issues++
		}
	}

	if issues > 0 {
		return fmt.Errorf("%d integrity checks reported problems", issues)
	}
	return nil
}
