// Package definition exposes a definition registry over HTTP.
//
// It is generic over the record type: the item and aura features each build
// a Service from their registry and Schema and register a Feature with the
// loader. Field edits go through a session.Session per request, so they are
// decoded against the field's declared kind and published with
// Registry.Update.
//
// # Routes
//
// Routes are mounted under the plural kind, e.g. /items:
//
//	GET  /items                       list (optional ?q= name prefix)
//	GET  /items/fields                field paths, kinds and enum variants
//	GET  /items/:id                   one definition, every path with its text
//	PUT  /items/:id/fields/:path      {"value": "..."} decode and commit
//	POST /items/reload                reload from the source
//	POST /items/save                  persist to the source
//
// # Status Codes
//
// StatusFor maps errors to responses: unknown id, name or path give 404,
// decode failures 422, a duplicate name or an id change 409, and anything
// else 500.
package definition
