package cmd

import (
	"fmt"

	"asset-editor/core/definition"
	"asset-editor/core/registry"
	"asset-editor/core/storage"
	"asset-editor/feature/aura"
	auramodels "asset-editor/feature/aura/models"
	"asset-editor/feature/item"
	itemmodels "asset-editor/feature/item/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// pullCmd copies the definition documents from the bucket to local files.
var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download the definition documents from storage",
	Long: `Loads the item and aura documents from the bucket and writes them to the
configured local paths. Documents are decoded on the way, so a malformed
object is reported instead of copied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return transfer(cmd, definition.SourceStorage, definition.SourceFile)
	},
}

// pushCmd copies local definition documents to the bucket.
var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the local definition documents to storage",
	Long:  `Loads the item and aura documents from the configured local paths and writes them to the bucket, creating the bucket if needed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return transfer(cmd, definition.SourceFile, definition.SourceStorage)
	},
}

func transfer(cmd *cobra.Command, from, to string) error {
	ctx := cmd.Context()
	a, err := setup()
	if err != nil {
		return err
	}

	if to == definition.SourceStorage {
		if err := storage.EnsureBucket(ctx, a.client, a.cfg.Storage.Bucket); err != nil {
			return err
		}
	}

	stores := func(source, path string) (definition.Store, error) {
		cfg := a.cfg.Defs
		cfg.Source = source
		return cfg.Store(path, a.client, a.cfg.Storage)
	}

	for _, doc := range []struct {
		kind string
		path string
	}{
		{item.Kind, a.cfg.Defs.ItemPath},
		{aura.Kind, a.cfg.Defs.AuraPath},
	} {
		src, err := stores(from, doc.path)
		if err != nil {
			return err
		}
		dst, err := stores(to, doc.path)
		if err != nil {
			return err
		}

		var count int
		switch doc.kind {
		case item.Kind:
			count, err = copyDocument[itemmodels.ItemDef](cmd, doc.kind, src, dst)
		default:
			count, err = copyDocument[auramodels.AuraDef](cmd, doc.kind, src, dst)
		}
		if err != nil {
			return err
		}
		a.logger.Info("Definitions copied",
			zap.String("kind", doc.kind),
			zap.Int("count", count),
			zap.Stringer("from", src),
			zap.Stringer("to", dst))
	}
	return nil
}

func copyDocument[T registry.Definition](cmd *cobra.Command, kind string, src registry.Source, dst registry.Sink) (int, error) {
	reg, err := registry.Load[T](cmd.Context(), kind, src)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", src, err)
	}
	if err := reg.Save(cmd.Context(), dst); err != nil {
		return 0, err
	}
	return reg.Len(), nil
}

func init() {
	RootCmd.AddCommand(pullCmd, pushCmd)
}
