package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// RequireAdmin ensures the authenticated principal carries the admin claim.
// Must be wired after AuthMiddleware; it never derives identity itself.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || !principal.IsAdmin {
			return apperrors.NewForbidden("admin access required")
		}
		return c.Next()
	}
}
