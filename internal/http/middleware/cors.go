package middleware

import "github.com/gofiber/fiber/v2"

// SetFormsCORS writes the permissive CORS headers used by the public forms.
func SetFormsCORS(c *fiber.Ctx) {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowMethods, "POST, OPTIONS")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, Accept")
}

// FormsCORS adds the forms CORS headers to every response of the group,
// errors included.
func FormsCORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		SetFormsCORS(c)
		return c.Next()
	}
}
