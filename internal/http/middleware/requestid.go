package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the standard header name used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the key used to store the request ID in Fiber's context locals.
	RequestIDLocalKey = "request_id"
)

const maxRequestIDLen = 128

// RequestID ensures every request has a request ID.
//
// Behavior:
// - Reads X-Request-ID from the incoming request header.
// - If missing or longer than 128 bytes, generates a new UUID.
// - Stores the value in Fiber context locals under RequestIDLocalKey.
// - Echoes it in the X-Request-ID response header.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}

// GetRequestID returns the request ID stored by RequestID, or "".
func GetRequestID(c *fiber.Ctx) string {
	if s, ok := c.Locals(RequestIDLocalKey).(string); ok {
		return s
	}
	return ""
}
