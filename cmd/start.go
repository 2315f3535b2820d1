package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asset-editor/core/loader"
	"asset-editor/core/logger"
	"asset-editor/core/middleware/auth"
	"asset-editor/core/middleware/rayid"
	"asset-editor/core/server"
	"asset-editor/feature/aura"
	"asset-editor/feature/catalog"
	"asset-editor/feature/export"
	"asset-editor/feature/integrity"
	"asset-editor/feature/item"

	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "asset-editor/docs/swagger"
)

// @title Asset Editor API
// @version 1.0
// @description API for browsing and editing item and aura definitions.
// @host localhost:8080
// @BasePath /

// shutdownTimeout bounds the final save of dirty registries.
const shutdownTimeout = 30 * time.Second

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the definition editor server",
	Long:  `Loads the definition documents, starts the HTTP server and initializes all enabled features. Dirty definitions are saved on shutdown unless defs.save_on_exit is false.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		logg := a.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		db := a.database()

		app := server.NewApp(a.cfg.Server)
		cat := a.catalog()
		exporter := export.NewService(db, a.items.Registry(), a.auras.Registry(), logg)
		if db != nil {
			if err := exporter.Migrate(ctx); err != nil {
				logg.Warn("Export table migration failed", zap.Error(err))
			}
		}

		mgr := loader.NewManager()
		mgr.Register(item.NewFeature(a.items))
		mgr.Register(aura.NewFeature(a.auras))
		mgr.Register(catalog.NewFeature(cat))
		mgr.Register(integrity.NewFeature(integrity.NewService(a.client, a.cfg.Storage, a.cfg.Defs.DocumentKeys(a.cfg.Storage), db, cat, logg)))
		mgr.Register(export.NewFeature(exporter))

		// RayID first so every later log line can carry it.
		app.Use(rayid.New())
		app.Use(logger.Request(logg))

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			errCh <- app.Listen(":" + a.cfg.Server.Port)
		}()

		sig, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server failed to start: %w", err)
			}
		case <-sig.Done():
		}

		logg.Info("Shutting down server...")
		_ = app.Shutdown()

		if !a.cfg.Defs.SaveOnExit {
			return nil
		}
		saveCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		var saveErr error
		if err := a.items.SaveIfDirty(saveCtx); err != nil {
			logg.Error("Failed to save items on exit", zap.Error(err))
			saveErr = err
		}
		if err := a.auras.SaveIfDirty(saveCtx); err != nil {
			logg.Error("Failed to save auras on exit", zap.Error(err))
			saveErr = err
		}
		return saveErr
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
