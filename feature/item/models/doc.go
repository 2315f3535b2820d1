// Package models defines the item record: ItemDef, its enumerations and the
// Schema that exposes its leaves as dotted field paths.
package models
