package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-api/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-api/pkg/util"
)

// RequireActive rejects disabled accounts after authentication succeeded.
func RequireActive() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("could not validate credentials")
		}
		if !principal.User.IsActive {
			return apperrors.NewInactiveAccount()
		}
		return c.Next()
	}
}

// RequireRole ensures the caller's stored role is in the allowed set. The
// role is read from the row loaded this request, so demotions take effect
// immediately even while an old token is still valid.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("could not validate credentials")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.User.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
