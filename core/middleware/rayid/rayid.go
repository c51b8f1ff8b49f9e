// Package rayid assigns a unique request id (RayID) to every incoming
// request for log correlation.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the request's RayID.
const Header = "X-Ray-Id"

// New creates the RayID middleware. The id is stored in c.Locals("ray_id")
// and echoed in the response header. An incoming X-Ray-Id is honored so
// upstream proxies can supply their own correlation id.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
