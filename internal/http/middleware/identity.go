package middleware

import (
	"github.com/gofiber/fiber/v2"

	"vocabapi/internal/model"
	"vocabapi/internal/service"
)

// UserLocalKey holds the resolved *model.User in Fiber's context locals.
const UserLocalKey = "user"

// Identity resolves the acting user before the handler runs. Resolution failures are
// returned to the global error handler.
func Identity(resolver service.IdentityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := resolver.Resolve(c.UserContext())
		if err != nil {
			return err
		}
		c.Locals(UserLocalKey, u)
		return c.Next()
	}
}

// UserFromCtx returns the user stored by Identity, or nil.
func UserFromCtx(c *fiber.Ctx) *model.User {
	u, _ := c.Locals(UserLocalKey).(*model.User)
	return u
}
