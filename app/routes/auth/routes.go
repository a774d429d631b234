package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)
	api.Get("/me", AuthMiddleware, MeAPI)
	api.Post("/changePassword", AuthMiddleware, ChangePasswordAPI)
}

// AuthMiddleware validates the JWT from cookie or Authorization header and
// stores the claims in locals for downstream handlers.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("user", claims)
	return c.Next()
}

// AdminOnly rejects teacher portal accounts on admin endpoints.
func AdminOnly(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*JWTClaims)
	if !ok || claims.Role != "admin" {
		return c.Status(403).JSON(fiber.Map{"error": "Admin role required"})
	}
	return c.Next()
}
