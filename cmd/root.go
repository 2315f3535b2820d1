package cmd

import (
	"fmt"
	"os"

	"asset-editor/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir holds the .env and config.yaml the commands load.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "asset-editor",
	Short: "Definition editor for item and aura records",
	Long: `Asset Editor loads item and aura definition documents, edits their
fields by dotted path and saves them back to local files or object storage.
It can also serve the definitions over HTTP, mirror them into SQL tables and
check that every icon they reference exists.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives readable ISO8601 output for a CLI.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding .env and config.yaml")
}
