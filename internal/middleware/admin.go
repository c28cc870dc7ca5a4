package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/emirhanakgul/toolshop-backend/internal/config"
	"github.com/emirhanakgul/toolshop-backend/internal/dto"
	"github.com/emirhanakgul/toolshop-backend/internal/models"
	"github.com/emirhanakgul/toolshop-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// RoleLookup resolves the stored role for a subject email.
// services.ErrUserNotFound signals a missing record.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// AdminRequired runs after Protected and checks, in order:
// 1. the X-Admin-Token header (bootstrap hatch)
// 2. the config admin-email list
// 3. the subject's stored user record
// A subject with no user record is denied, never dereferenced.
func AdminRequired(roles RoleLookup, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		email, err := SubjectEmail(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(
				dto.NewError(dto.KindUnauthenticated, "Unauthorized"))
		}

		if contains(adminEmails, email) {
			return c.Next()
		}

		role, err := roles.RoleByEmail(c.UserContext(), email)
		if err != nil {
			// Fail closed on both a missing record and a store failure.
			if !errors.Is(err, services.ErrUserNotFound) {
				slog.Error("admin role lookup failed", "subject", email, "error", err)
			}
			return c.Status(fiber.StatusForbidden).JSON(
				dto.NewError(dto.KindForbidden, "Admin access required"))
		}
		if role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(
				dto.NewError(dto.KindForbidden, "Admin access required"))
		}
		return c.Next()
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
