package models

import "asset-editor/core/fieldpath"

// ItemType is the broad category of an item.
type ItemType int

const (
	ItemTypeEquipment ItemType = iota
	ItemTypeConsumable
	ItemTypeMaterial
	ItemTypeMiscellaneous
)

// ItemTypes lists the ItemType variants.
var ItemTypes = fieldpath.NewEnumeration("ItemType", "Equipment", "Consumable", "Material", "Miscellaneous")

func (t ItemType) String() string { return ItemTypes.MustVariant(int(t)) }

func (t ItemType) MarshalText() ([]byte, error) { return ItemTypes.MarshalVariant(int(t)) }

func (t *ItemType) UnmarshalText(b []byte) error {
	i, err := ItemTypes.Parse(string(b))
	if err != nil {
		return err
	}
	*t = ItemType(i)
	return nil
}

// ItemRarity grades an item from Junk to Mythical.
type ItemRarity int

const (
	ItemRarityJunk ItemRarity = iota
	ItemRarityCommon
	ItemRarityUncommon
	ItemRarityRare
	ItemRarityEpic
	ItemRarityMythical
)

// ItemRarities lists the ItemRarity variants.
var ItemRarities = fieldpath.NewEnumeration("ItemRarity", "Junk", "Common", "Uncommon", "Rare", "Epic", "Mythical")

func (r ItemRarity) String() string { return ItemRarities.MustVariant(int(r)) }

func (r ItemRarity) MarshalText() ([]byte, error) { return ItemRarities.MarshalVariant(int(r)) }

func (r *ItemRarity) UnmarshalText(b []byte) error {
	i, err := ItemRarities.Parse(string(b))
	if err != nil {
		return err
	}
	*r = ItemRarity(i)
	return nil
}

// EquipmentSlot is where an equipment item is worn. SlotNone marks items
// that are not equippable.
type EquipmentSlot int

const (
	SlotMainHand EquipmentSlot = iota
	SlotOffHand
	SlotHead
	SlotChest
	SlotWaist
	SlotHands
	SlotLegs
	SlotFeet
	SlotFinger
	SlotNeck
	SlotArtifact
	SlotAccessory
	SlotNone
)

// EquipmentSlots lists the EquipmentSlot variants.
var EquipmentSlots = fieldpath.NewEnumeration("EquipmentSlot",
	"MainHand", "OffHand", "Head", "Chest", "Waist", "Hands", "Legs",
	"Feet", "Finger", "Neck", "Artifact", "Accessory", "None",
)

func (s EquipmentSlot) String() string { return EquipmentSlots.MustVariant(int(s)) }

func (s EquipmentSlot) MarshalText() ([]byte, error) { return EquipmentSlots.MarshalVariant(int(s)) }

func (s *EquipmentSlot) UnmarshalText(b []byte) error {
	i, err := EquipmentSlots.Parse(string(b))
	if err != nil {
		return err
	}
	*s = EquipmentSlot(i)
	return nil
}
