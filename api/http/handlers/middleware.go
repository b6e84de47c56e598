package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abalakin/userauth/api/http/presenter"
	"github.com/abalakin/userauth/pkg/auth"
)

// localsUserKey is where the auth middleware stores the resolved identity.
const localsUserKey = "authUser"

// NewAuthMiddleware returns a Fiber middleware that guards protected routes.
// The header-to-identity work is delegated to the Guard; on success the
// resolved identity, already stripped of credential material, is attached to
// the request context for downstream handlers (see UserFromCtx).
func NewAuthMiddleware(guard *auth.Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := guard.Authenticate(c.Context(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			message := "not authorized, token failed"
			if errors.Is(err, auth.ErrNoToken) {
				message = auth.ErrNoToken.Error()
			}
			return presenter.Error(c, http.StatusUnauthorized, message)
		}
		c.Locals(localsUserKey, user.Public())
		return c.Next()
	}
}

// UserFromCtx retrieves the identity placed by NewAuthMiddleware.
func UserFromCtx(c *fiber.Ctx) (auth.PublicUser, bool) {
	user, ok := c.Locals(localsUserKey).(auth.PublicUser)
	return user, ok
}
