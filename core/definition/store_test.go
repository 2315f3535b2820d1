package definition

import (
	"testing"

	"asset-editor/core/registry"
	"asset-editor/core/storage"
	"asset-editor/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Store(t *testing.T) {
	sc := storage.Config{Bucket: "assets", DefsPrefix: "definitions/"}
	client := new(mocks.Client)

	t.Run("File", func(t *testing.T) {
		store, err := Config{Source: SourceFile}.Store("defs/item.yaml", nil, sc)
		require.NoError(t, err)
		assert.Equal(t, registry.File{Path: "defs/item.yaml"}, store)
	})

	t.Run("Storage", func(t *testing.T) {
		store, err := Config{Source: SourceStorage}.Store("defs/aura.json", client, sc)
		require.NoError(t, err)
		obj, ok := store.(registry.Object)
		require.True(t, ok)
		assert.Equal(t, "assets", obj.Bucket)
		assert.Equal(t, "definitions/aura.json", obj.Key)
		assert.Equal(t, registry.FormatJSON, obj.Format())
	})

	t.Run("StorageWithoutClient", func(t *testing.T) {
		_, err := Config{Source: SourceStorage}.Store("defs/aura.yaml", nil, sc)
		assert.Error(t, err)
	})

	t.Run("Unknown", func(t *testing.T) {
		cfg := Config{Source: "ftp"}
		assert.False(t, cfg.IsValidSource())
		_, err := cfg.Store("defs/item.yaml", client, sc)
		assert.ErrorContains(t, err, "ftp")
	})
}

func TestConfig_DocumentKeys(t *testing.T) {
	cfg := Config{ItemPath: "defs/item.yaml", AuraPath: "/srv/aura.json"}
	keys := cfg.DocumentKeys(storage.Config{DefsPrefix: "definitions/"})
	assert.Equal(t, []string{"definitions/item.yaml", "definitions/aura.json"}, keys)
}
