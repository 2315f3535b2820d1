// Package item loads the item definition document and serves it under
// /items. Record layout, enumerations and field paths live in the models
// subpackage.
package item
