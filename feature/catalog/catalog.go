package catalog

import (
	"fmt"
	"strings"

	"asset-editor/core/fieldpath"
	"asset-editor/core/registry"
	auramodels "asset-editor/feature/aura/models"
	itemmodels "asset-editor/feature/item/models"
)

// AssetType is the record kind of a catalog entry.
type AssetType int

const (
	AssetAura AssetType = iota
	AssetItem
)

// AssetTypes lists the AssetType variants.
var AssetTypes = fieldpath.NewEnumeration("AssetType", "Aura", "Item")

func (t AssetType) String() string { return AssetTypes.MustVariant(int(t)) }

func (t AssetType) MarshalText() ([]byte, error) { return AssetTypes.MarshalVariant(int(t)) }

func (t *AssetType) UnmarshalText(b []byte) error {
	i, err := AssetTypes.Parse(string(b))
	if err != nil {
		return err
	}
	*t = AssetType(i)
	return nil
}

// Entry is one definition of any kind.
type Entry struct {
	Name      string    `json:"name"`
	ID        uint32    `json:"id"`
	AssetType AssetType `json:"asset_type"`
	Icon      string    `json:"icon"`
}

type iconDefinition interface {
	registry.Definition
	DefIcon() string
}

// Service lists the definitions of every kind together.
type Service struct {
	items *registry.Registry[itemmodels.ItemDef]
	auras *registry.Registry[auramodels.AuraDef]
}

// NewService creates a catalog over the item and aura registries.
func NewService(items *registry.Registry[itemmodels.ItemDef], auras *registry.Registry[auramodels.AuraDef]) *Service {
	return &Service{items: items, auras: auras}
}

// Entries returns auras then items, each in collection order. A non-empty
// prefix keeps only names starting with it, ignoring case.
func (s *Service) Entries(prefix string) []Entry {
	prefix = strings.ToLower(prefix)
	out := make([]Entry, 0, s.auras.Len()+s.items.Len())
	out = collect(out, s.auras, AssetAura, prefix)
	out = collect(out, s.items, AssetItem, prefix)
	return out
}

// Filter returns Entries restricted to one asset type.
func (s *Service) Filter(t AssetType, prefix string) []Entry {
	prefix = strings.ToLower(prefix)
	switch t {
	case AssetAura:
		return collect([]Entry{}, s.auras, AssetAura, prefix)
	case AssetItem:
		return collect([]Entry{}, s.items, AssetItem, prefix)
	default:
		return []Entry{}
	}
}

// Lookup returns the entry of one definition.
func (s *Service) Lookup(t AssetType, id uint32) (Entry, error) {
	switch t {
	case AssetAura:
		return lookup(s.auras, t, id)
	case AssetItem:
		return lookup(s.items, t, id)
	default:
		return Entry{}, fmt.Errorf("%w: asset type %d", fieldpath.ErrUnrecognizedVariant, int(t))
	}
}

func collect[T iconDefinition](out []Entry, reg *registry.Registry[T], t AssetType, prefix string) []Entry {
	for _, h := range reg.Defs() {
		if prefix != "" && !strings.HasPrefix(strings.ToLower(h.Name()), prefix) {
			continue
		}
		out = append(out, Entry{Name: h.Name(), ID: h.ID(), AssetType: t, Icon: h.Def().DefIcon()})
	}
	return out
}

func lookup[T iconDefinition](reg *registry.Registry[T], t AssetType, id uint32) (Entry, error) {
	h, err := reg.ByID(id)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: h.Name(), ID: h.ID(), AssetType: t, Icon: h.Def().DefIcon()}, nil
}
