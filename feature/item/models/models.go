package models

import "asset-editor/core/fieldpath"

// ItemDef is the definition of one item.
type ItemDef struct {
	ID           uint32       `yaml:"id" json:"id"`
	Name         string       `yaml:"name" json:"name"`
	RulesText    string       `yaml:"rules_text" json:"rules_text"`
	FlavorText   string       `yaml:"flavor_text" json:"flavor_text"`
	Icon         string       `yaml:"icon" json:"icon"`
	ItemType     ItemType     `yaml:"item_type" json:"item_type"`
	ItemRarity   ItemRarity   `yaml:"item_rarity" json:"item_rarity"`
	MaxStack     uint32       `yaml:"max_stack" json:"max_stack"`
	BuyValue     uint32       `yaml:"buy_value" json:"buy_value"`
	SellValue    uint32       `yaml:"sell_value" json:"sell_value"`
	EquipmentDef EquipmentDef `yaml:"equipment_def" json:"equipment_def"`
}

// EquipmentDef holds the equipment-only attributes of an item.
type EquipmentDef struct {
	Slot  EquipmentSlot `yaml:"slot" json:"slot"`
	Armor uint32        `yaml:"armor" json:"armor"`
}

func (d ItemDef) DefID() uint32   { return d.ID }
func (d ItemDef) DefName() string { return d.Name }
func (d ItemDef) DefIcon() string { return d.Icon }

// Defaults is the value absent fields take when a definition is loaded.
// An item without equipment_def is not equippable.
func (ItemDef) Defaults() ItemDef {
	return ItemDef{EquipmentDef: EquipmentDef{Slot: SlotNone}}
}

// Schema is the editable field layout of ItemDef.
var Schema = fieldpath.NewSchema(
	fieldpath.Uint32("id", func(d *ItemDef) *uint32 { return &d.ID }),
	fieldpath.Text("name", func(d *ItemDef) *string { return &d.Name }),
	fieldpath.Text("rules_text", func(d *ItemDef) *string { return &d.RulesText }),
	fieldpath.Text("flavor_text", func(d *ItemDef) *string { return &d.FlavorText }),
	fieldpath.Text("icon", func(d *ItemDef) *string { return &d.Icon }),
	fieldpath.Enum("item_type", ItemTypes, func(d *ItemDef) *ItemType { return &d.ItemType }),
	fieldpath.Enum("item_rarity", ItemRarities, func(d *ItemDef) *ItemRarity { return &d.ItemRarity }),
	fieldpath.Uint32("max_stack", func(d *ItemDef) *uint32 { return &d.MaxStack }),
	fieldpath.Uint32("buy_value", func(d *ItemDef) *uint32 { return &d.BuyValue }),
	fieldpath.Uint32("sell_value", func(d *ItemDef) *uint32 { return &d.SellValue }),
	fieldpath.Nest("equipment_def", func(d *ItemDef) *EquipmentDef { return &d.EquipmentDef },
		fieldpath.Enum("slot", EquipmentSlots, func(e *EquipmentDef) *EquipmentSlot { return &e.Slot }),
		fieldpath.Uint32("armor", func(e *EquipmentDef) *uint32 { return &e.Armor }),
	),
)

// Enums lists the enumerations used by ItemDef, for callers that guess kinds.
var Enums = []*fieldpath.Enumeration{ItemTypes, ItemRarities, EquipmentSlots}
