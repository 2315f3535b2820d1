// Package middleware groups the HTTP middleware of the Fiber application.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: a unique request id per request, stored in the fiber locals and
//     echoed in the X-Ray-ID response header.
//
// Both are registered globally by the start command; rayid must come first
// so the request logger can read the id.
package middleware
