package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const ClientIDHeader = "X-Client-ID"

// EnsureClientID stores the caller's client id in c.Locals("clientID"). It
// comes from the X-Client-ID header or the clientId query parameter; a
// caller that sends neither gets a fresh id, echoed back in the header.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := c.Get(ClientIDHeader)
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.New().String()
			log.Debugf("assigned client id %s to %s", clientID, c.IP())
		}

		c.Locals("clientID", clientID)
		c.Set(ClientIDHeader, clientID)
		return c.Next()
	}
}
