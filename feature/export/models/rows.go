package models

import (
	auramodels "asset-editor/feature/aura/models"
	itemmodels "asset-editor/feature/item/models"
)

// ItemRow is an item definition flattened into the item_defs table.
type ItemRow struct {
	ID            uint32 `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name          string `gorm:"column:name;type:varchar(255);index"`
	RulesText     string `gorm:"column:rules_text;type:text"`
	FlavorText    string `gorm:"column:flavor_text;type:text"`
	Icon          string `gorm:"column:icon;type:varchar(255)"`
	ItemType      string `gorm:"column:item_type;type:varchar(32)"`
	ItemRarity    string `gorm:"column:item_rarity;type:varchar(32)"`
	MaxStack      uint32 `gorm:"column:max_stack"`
	BuyValue      uint32 `gorm:"column:buy_value"`
	SellValue     uint32 `gorm:"column:sell_value"`
	EquipmentSlot string `gorm:"column:equipment_slot;type:varchar(32)"`
	Armor         uint32 `gorm:"column:armor"`
}

func (ItemRow) TableName() string { return "item_defs" }

// AuraRow is an aura definition in the aura_defs table.
type AuraRow struct {
	ID        uint32  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name      string  `gorm:"column:name;type:varchar(255);index"`
	Icon      string  `gorm:"column:icon;type:varchar(255)"`
	Duration  float32 `gorm:"column:duration"`
	AuraType  string  `gorm:"column:aura_type;type:varchar(32)"`
	RulesText string  `gorm:"column:rules_text;type:text"`
}

func (AuraRow) TableName() string { return "aura_defs" }

// ItemColumns and AuraColumns are the columns an export needs.
var (
	ItemColumns = []string{"id", "name", "rules_text", "flavor_text", "icon", "item_type", "item_rarity", "max_stack", "buy_value", "sell_value", "equipment_slot", "armor"}
	AuraColumns = []string{"id", "name", "icon", "duration", "aura_type", "rules_text"}
)

// NewItemRow flattens an item definition. Enumerations are stored by name.
func NewItemRow(d itemmodels.ItemDef) ItemRow {
	return ItemRow{
		ID:            d.ID,
		Name:          d.Name,
		RulesText:     d.RulesText,
		FlavorText:    d.FlavorText,
		Icon:          d.Icon,
		ItemType:      d.ItemType.String(),
		ItemRarity:    d.ItemRarity.String(),
		MaxStack:      d.MaxStack,
		BuyValue:      d.BuyValue,
		SellValue:     d.SellValue,
		EquipmentSlot: d.EquipmentDef.Slot.String(),
		Armor:         d.EquipmentDef.Armor,
	}
}

// NewAuraRow converts an aura definition.
func NewAuraRow(d auramodels.AuraDef) AuraRow {
	return AuraRow{
		ID:        d.ID,
		Name:      d.Name,
		Icon:      d.Icon,
		Duration:  d.Duration,
		AuraType:  d.AuraType.String(),
		RulesText: d.RulesText,
	}
}
