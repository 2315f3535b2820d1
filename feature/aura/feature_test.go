package aura

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"asset-editor/core/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aura.json")
	doc := `{"next_id": 1, "defs": [{"id": 0, "name": "Burning", "duration": 3600, "aura_type": "Magic"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	svc, err := Load(context.Background(), registry.File{Path: path}, zap.NewNop())
	require.NoError(t, err)

	rec, err := svc.GetByName("Burning")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), rec.ID)
	assert.Equal(t, "aura", NewFeature(svc).Name())
}
