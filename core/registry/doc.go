// Package registry holds the loaded definitions of one record kind.
//
// A Registry reads a document of the form { next_id, defs } from a Source,
// keeps the definitions in their order of appearance and indexes them both by
// numeric id and by name.
//
// # Handles
//
// Lookups return a *Handle: an immutable, shared reference to one definition.
// Any number of readers may hold the same handle. Editing works copy-on-write:
// take Def() (a copy), change it, and pass it to Update, which publishes a new
// handle in the same slot. Readers holding the old handle keep seeing the old
// value until they look the definition up again.
//
// # Sources
//
// File and Object (object storage) implement both Source and Sink. The text
// encoding follows the file extension: YAML (.yaml, .yml) or JSON (.json).
//
// # Errors
//
//   - ErrSourceUnreadable, ErrSourceMalformed: Load/Reload failed; no partial registry.
//   - ErrUnknownID, ErrUnknownName: lookup miss.
//   - ErrDuplicateName: an update would break name uniqueness.
//
// # Usage
//
//	items, err := registry.Load[models.ItemDef](ctx, "item", registry.File{Path: "defs/item.yaml"})
//	h, err := items.ByName("Red Potion")
//	def := h.Def()
//	def.SellValue = 7
//	err = items.Update(def)
//	err = items.Save(ctx, registry.File{Path: "defs/item.yaml"})
package registry
