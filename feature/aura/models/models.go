package models

import "asset-editor/core/fieldpath"

// AuraType is the damage school of an aura.
type AuraType int

const (
	AuraTypePhysical AuraType = iota
	AuraTypeMagic
	AuraTypePoison
	AuraTypeNone
)

// AuraTypes lists the AuraType variants.
var AuraTypes = fieldpath.NewEnumeration("AuraType", "Physical", "Magic", "Poison", "None")

func (t AuraType) String() string { return AuraTypes.MustVariant(int(t)) }

func (t AuraType) MarshalText() ([]byte, error) { return AuraTypes.MarshalVariant(int(t)) }

func (t *AuraType) UnmarshalText(b []byte) error {
	i, err := AuraTypes.Parse(string(b))
	if err != nil {
		return err
	}
	*t = AuraType(i)
	return nil
}

// AuraDef is the definition of one aura. Duration is in seconds.
type AuraDef struct {
	ID        uint32   `yaml:"id" json:"id"`
	Name      string   `yaml:"name" json:"name"`
	Icon      string   `yaml:"icon" json:"icon"`
	Duration  float32  `yaml:"duration" json:"duration"`
	AuraType  AuraType `yaml:"aura_type" json:"aura_type"`
	RulesText string   `yaml:"rules_text" json:"rules_text"`
}

func (d AuraDef) DefID() uint32   { return d.ID }
func (d AuraDef) DefName() string { return d.Name }
func (d AuraDef) DefIcon() string { return d.Icon }

// Schema is the editable field layout of AuraDef.
var Schema = fieldpath.NewSchema(
	fieldpath.Uint32("id", func(d *AuraDef) *uint32 { return &d.ID }),
	fieldpath.Text("name", func(d *AuraDef) *string { return &d.Name }),
	fieldpath.Text("icon", func(d *AuraDef) *string { return &d.Icon }),
	fieldpath.Float32("duration", func(d *AuraDef) *float32 { return &d.Duration }),
	fieldpath.Enum("aura_type", AuraTypes, func(d *AuraDef) *AuraType { return &d.AuraType }),
	fieldpath.Text("rules_text", func(d *AuraDef) *string { return &d.RulesText }),
)

// Enums lists the enumerations used by AuraDef.
var Enums = []*fieldpath.Enumeration{AuraTypes}
