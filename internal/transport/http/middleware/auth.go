package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gigclaw/backend/internal/config"
	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
)

// CallerKey is the fiber Locals key holding the authenticated identity.
const CallerKey = "caller"

// AgentAuth resolves the caller identity from X-Agent-Id / X-Agent-Key.
// Every "caller = X" precondition downstream compares against the
// identity set here, never against a client-supplied body field.
func AgentAuth(accounts ports.AccountService, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		agentID := c.Get("X-Agent-Id")
		apiKey := c.Get("X-Agent-Key")
		if agentID == "" || apiKey == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing agent credentials",
			})
		}

		identity, err := accounts.Authenticate(c.Context(), agentID, apiKey)
		if err != nil {
			log.Warnw("agent_auth_failed", "agent_id", agentID)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		c.Locals(CallerKey, identity.AgentID)
		return c.Next()
	}
}

// Caller returns the authenticated identity set by AgentAuth.
func Caller(c *fiber.Ctx) string {
	caller, _ := c.Locals(CallerKey).(string)
	return caller
}

func AdminAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		apiKey := cfg.Auth.AdminAPIKey
		if apiKey == "" {
			return c.Next()
		}

		headerToken := c.Get("X-Admin-Token")
		if headerToken == "" {
			auth := c.Get("Authorization")
			const prefix = "Bearer "
			if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
				headerToken = auth[len(prefix):]
			}
		}

		if headerToken != apiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		return c.Next()
	}
}
