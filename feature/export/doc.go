// Package export mirrors the item and aura definitions into SQL tables so
// game servers can read them from a database.
//
// Each definition becomes one row keyed by its id (item_defs, aura_defs).
// Enumerations are stored by variant name and the item's equipment_def is
// flattened into equipment_slot and armor. An export upserts every row and
// deletes rows whose id is gone, one transaction per table.
//
// # HTTP Endpoints
//
//   - POST /export : run an export.
//   - GET /export/verify : list missing columns per export table.
//
// The feature is only enabled when a database is connected.
package export
