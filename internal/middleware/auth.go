package middleware

import (
	"errors"

	"github.com/emirhanakgul/toolshop-backend/internal/config"
	"github.com/emirhanakgul/toolshop-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Protected verifies the bearer token on the Authorization header. A missing
// or malformed header is 401; a present token that fails verification
// (tampered or expired) is 403, matching the reference gate's split.
func Protected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return c.Status(fiber.StatusUnauthorized).JSON(
					dto.NewError(dto.KindUnauthenticated, "Missing or malformed access token"))
			}
			return c.Status(fiber.StatusForbidden).JSON(
				dto.NewError(dto.KindInvalidCredential, "Invalid or expired access token"))
		},
	})
}

// SubjectEmail extracts the verified subject from the parsed token that
// Protected left in context locals.
func SubjectEmail(c *fiber.Ctx) (string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return "", errors.New("no token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("missing sub claim")
	}
	return sub, nil
}
