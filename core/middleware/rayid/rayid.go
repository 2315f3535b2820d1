// Package rayid tags every request with a unique ray id.
//
// The id is taken from an incoming X-Ray-ID header when present, otherwise a
// new UUID is generated. It is stored in the "ray_id" local, where
// logger.WithRayID picks it up, and echoed in the response header.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Header is the request and response header carrying the ray id.
	Header = "X-Ray-ID"
	// LocalKey is the fiber local the ray id is stored under.
	LocalKey = "ray_id"
)

// New creates the ray id middleware.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
