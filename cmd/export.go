package cmd

import (
	"fmt"

	"asset-editor/feature/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportVerify bool

// exportCmd mirrors the definitions into the export database.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Mirror item and aura definitions into SQL tables",
	Long: `Creates the item_defs and aura_defs tables when needed, upserts every
definition by id and deletes rows whose id no longer exists. With --verify
only the table columns are checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}

		db := a.database()
		if db == nil {
			return fmt.Errorf("export requires a database connection")
		}
		svc := export.NewService(db, a.items.Registry(), a.auras.Registry(), a.logger)

		if exportVerify {
			report, err := svc.Verify(ctx)
			if err != nil {
				return err
			}
			if len(report) == 0 {
				a.logger.Info("Export tables are complete.")
				return nil
			}
			for table, missing := range report {
				a.logger.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", missing))
			}
			return fmt.Errorf("%d export tables are incomplete", len(report))
		}

		if err := svc.Migrate(ctx); err != nil {
			return err
		}
		_, err = svc.Export(ctx)
		return err
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolVar(&exportVerify, "verify", false, "Only check the export tables' columns")
}
