package catalog_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"asset-editor/core/registry"
	auramodels "asset-editor/feature/aura/models"
	"asset-editor/feature/catalog"
	itemmodels "asset-editor/feature/item/models"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *catalog.Service {
	t.Helper()
	items, err := registry.New("item", 3, []itemmodels.ItemDef{
		{ID: 1, Name: "Red Potion", Icon: "icons/red_potion.png"},
		{ID: 2, Name: "rusty sword", Icon: "icons/rusty_sword.png"},
	})
	require.NoError(t, err)

	auras, err := registry.New("aura", 2, []auramodels.AuraDef{
		{ID: 0, Name: "Regeneration", Icon: "icons/regen.png"},
		{ID: 1, Name: "Burning", Icon: "icons/burn.png"},
	})
	require.NoError(t, err)

	return catalog.NewService(items, auras)
}

func names(entries []catalog.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestEntries(t *testing.T) {
	svc := newCatalog(t)

	t.Run("AurasFirst", func(t *testing.T) {
		entries := svc.Entries("")
		assert.Equal(t, []string{"Regeneration", "Burning", "Red Potion", "rusty sword"}, names(entries))
		assert.Equal(t, catalog.AssetAura, entries[0].AssetType)
		assert.Equal(t, catalog.AssetItem, entries[2].AssetType)
		assert.Equal(t, "icons/red_potion.png", entries[2].Icon)
	})

	tests := []struct {
		prefix string
		want   []string
	}{
		{"r", []string{"Regeneration", "Red Potion", "rusty sword"}},
		{"RU", []string{"rusty sword"}},
		{"re", []string{"Regeneration", "Red Potion"}},
		{"burning!", []string{}},
	}
	for _, tt := range tests {
		t.Run("Prefix_"+tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, names(svc.Entries(tt.prefix)))
		})
	}
}

func TestFilterAndLookup(t *testing.T) {
	svc := newCatalog(t)

	assert.Equal(t, []string{"Red Potion"}, names(svc.Filter(catalog.AssetItem, "red")))
	assert.Equal(t, []string{"Regeneration"}, names(svc.Filter(catalog.AssetAura, "reg")))

	none := svc.Filter(catalog.AssetItem, "zzz")
	assert.NotNil(t, none)
	assert.Empty(t, none)

	e, err := svc.Lookup(catalog.AssetAura, 1)
	require.NoError(t, err)
	assert.Equal(t, catalog.Entry{Name: "Burning", ID: 1, AssetType: catalog.AssetAura, Icon: "icons/burn.png"}, e)

	_, err = svc.Lookup(catalog.AssetItem, 9)
	assert.ErrorIs(t, err, registry.ErrUnknownID)
}

func TestAssetType_Text(t *testing.T) {
	b, err := catalog.AssetItem.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Item", string(b))

	var at catalog.AssetType
	assert.NoError(t, at.UnmarshalText([]byte("Aura")))
	assert.Equal(t, catalog.AssetAura, at)
	assert.Error(t, at.UnmarshalText([]byte("Spell")))
}

func TestHandler(t *testing.T) {
	feature := catalog.NewFeature(newCatalog(t))
	assert.Equal(t, "catalog", feature.Name())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	tests := []struct {
		name   string
		target string
		status int
		body   string
	}{
		{"Search", "/catalog?q=bur", fiber.StatusOK, `[{"name":"Burning","id":1,"asset_type":"Aura","icon":"icons/burn.png"}]`},
		{"SearchType", "/catalog?type=Item&q=rusty", fiber.StatusOK, `[{"name":"rusty sword","id":2,"asset_type":"Item","icon":"icons/rusty_sword.png"}]`},
		{"SearchTypeNoMatch", "/catalog?type=Aura&q=zzz", fiber.StatusOK, `[]`},
		{"SearchNoMatch", "/catalog?q=zzz", fiber.StatusOK, `[]`},
		{"BadType", "/catalog?type=Spell", fiber.StatusBadRequest, ""},
		{"Lookup", "/catalog/Item/1", fiber.StatusOK, `{"name":"Red Potion","id":1,"asset_type":"Item","icon":"icons/red_potion.png"}`},
		{"LookupMissing", "/catalog/Aura/7", fiber.StatusNotFound, ""},
		{"LookupBadID", "/catalog/Aura/x", fiber.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.body != "" {
				data, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.JSONEq(t, tt.body, string(data))
			}
		})
	}
}

func TestEntry_JSON(t *testing.T) {
	data, err := json.Marshal(catalog.Entry{Name: "Burning", ID: 1, AssetType: catalog.AssetAura})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"asset_type":"Aura"`)
}
