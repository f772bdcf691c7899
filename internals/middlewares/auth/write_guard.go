package auth

import (
	"github.com/gofiber/fiber/v2"
)

// WriteGuard deja pasar las lecturas sin token y exige JWT para cualquier
// método que modifique datos.
func WriteGuard(o AuthJWTOpts) fiber.Handler {
	authenticate := AuthJWT(o)

	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}
		return authenticate(c)
	}
}
