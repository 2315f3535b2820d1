package models

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"asset-editor/core/fieldpath"
	"asset-editor/core/registry"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const potionYAML = `next_id: 2
defs:
  - id: 1
    name: Red Potion
    rules_text: Restores health.
    flavor_text: Tastes like cherries.
    icon: icons/red_potion.png
    item_type: Consumable
    item_rarity: Common
    max_stack: 20
    buy_value: 10
    sell_value: 5
`

func TestSchema_Paths(t *testing.T) {
	want := []string{
		"id", "name", "rules_text", "flavor_text", "icon", "item_type", "item_rarity",
		"max_stack", "buy_value", "sell_value", "equipment_def.slot", "equipment_def.armor",
	}
	assert.Equal(t, want, Schema.Paths())
}

func TestSchema_EnumFields(t *testing.T) {
	leaf, err := Schema.Field("equipment_def.slot")
	require.NoError(t, err)
	assert.Equal(t, fieldpath.KindEnum, leaf.Kind)
	assert.Len(t, leaf.Enum.Variants(), 13)

	def := ItemDef{}.Defaults()
	text, err := Schema.Get(&def, "equipment_def.slot")
	require.NoError(t, err)
	assert.Equal(t, "None", text)

	require.NoError(t, Schema.Set(&def, "item_rarity", "Mythical"))
	assert.Equal(t, ItemRarityMythical, def.ItemRarity)

	err = Schema.Set(&def, "item_type", "Weapon")
	assert.ErrorIs(t, err, fieldpath.ErrUnrecognizedVariant)
}

func TestEnums_Text(t *testing.T) {
	b, err := SlotOffHand.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "OffHand", string(b))
	assert.Equal(t, "Epic", ItemRarityEpic.String())

	var slot EquipmentSlot
	require.NoError(t, slot.UnmarshalText([]byte("Finger")))
	assert.Equal(t, SlotFinger, slot)
	assert.Error(t, slot.UnmarshalText([]byte("finger")))

	_, err = ItemType(42).MarshalText()
	assert.Error(t, err)
}

func TestItemDef_Codecs(t *testing.T) {
	def := ItemDef{
		ID:           3,
		Name:         "Iron Helm",
		ItemType:     ItemTypeEquipment,
		ItemRarity:   ItemRarityUncommon,
		EquipmentDef: EquipmentDef{Slot: SlotHead, Armor: 4},
	}

	t.Run("YAML", func(t *testing.T) {
		data, err := yaml.Marshal(def)
		require.NoError(t, err)
		assert.Contains(t, string(data), "item_type: Equipment")
		assert.Contains(t, string(data), "slot: Head")

		var got ItemDef
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, def, got)
	})

	t.Run("JSON", func(t *testing.T) {
		data, err := json.Marshal(def)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"item_rarity":"Uncommon"`)

		var got ItemDef
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, def, got)
	})
}

func TestRegistry_RedPotion(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "item.yaml")
	require.NoError(t, os.WriteFile(path, []byte(potionYAML), 0o644))
	file := registry.File{Path: path}

	items, err := registry.Load[ItemDef](ctx, "item", file)
	require.NoError(t, err)

	h, err := items.ByName("Red Potion")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), h.ID())

	def := h.Def()
	assert.Equal(t, EquipmentDef{Slot: SlotNone}, def.EquipmentDef, "absent equipment_def defaults")

	text, err := Schema.Get(&def, "sell_value")
	require.NoError(t, err)
	assert.Equal(t, "5", text)

	require.NoError(t, Schema.Set(&def, "sell_value", "7"))
	require.NoError(t, items.Update(def))

	again, err := items.ByID(1)
	require.NoError(t, err)
	after := again.Def()
	text, err = Schema.Get(&after, "sell_value")
	require.NoError(t, err)
	assert.Equal(t, "7", text)
	assert.Equal(t, uint32(5), h.Def().SellValue, "earlier handle is a snapshot")

	require.NoError(t, items.Save(ctx, file))
	reloaded, err := registry.Load[ItemDef](ctx, "item", file)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), reloaded.NextID())

	saved, err := reloaded.ByID(1)
	require.NoError(t, err)
	want := h.Def()
	want.SellValue = 7
	assert.Equal(t, want, saved.Def(), "only sell_value differs")
}

func TestSchema_SetRejectsBadText(t *testing.T) {
	def := ItemDef{}.Defaults()
	def.MaxStack = 20

	err := Schema.Set(&def, "max_stack", "abc")
	assert.ErrorIs(t, err, fieldpath.ErrMalformedNumber)
	assert.Equal(t, uint32(20), def.MaxStack)

	err = Schema.Set(&def, "max_stack", "-1")
	assert.ErrorIs(t, err, fieldpath.ErrMalformedNumber)
}
