// Package catalog is the combined view over every definition kind.
//
// An Entry carries the name, id, AssetType and icon path of one definition.
// Entries lists auras first and items second, each in file order, and can
// narrow the list to names starting with a case-insensitive prefix. The
// list and show commands and the icon integrity check all read definitions
// through the catalog.
//
// # HTTP Endpoints
//
//   - GET /catalog?q=&type= : search.
//   - GET /catalog/:type/:id : one entry (type is Aura or Item).
package catalog
