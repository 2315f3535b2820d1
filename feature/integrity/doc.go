// Package integrity checks that the storage bucket and export database can
// serve the loaded definitions.
//
// # Checks Provided
//
//   - Structure: the bucket exists and holds the definition and icon folders.
//   - Documents: the item and aura definition documents exist in the bucket.
//   - Icons: every aura and item icon path resolves to an object. Empty paths
//     are reported separately as blank.
//   - Schema: the export tables carry the columns and types of their row
//     models.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/documents : Runs documents check.
//   - GET /integrity/icons : Runs icon check.
//   - GET /integrity/schema : Runs export schema check.
package integrity
