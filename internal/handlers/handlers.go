package handlers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/emirhanakgul/toolshop-backend/internal/dto"
	"github.com/emirhanakgul/toolshop-backend/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// DocumentCollection is the store surface a resource handler needs. Every
// handler method performs exactly one of these operations per request.
type DocumentCollection interface {
	Find(ctx context.Context, filter map[string]string) ([]models.Document, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	Insert(ctx context.Context, data map[string]interface{}) (uuid.UUID, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}

// UserStore is the typed user surface.
type UserStore interface {
	Upsert(ctx context.Context, email string, req dto.UpsertUserRequest) (*models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)
	Promote(ctx context.Context, email string) (int64, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// TokenIssuer signs an identity token for a subject email.
type TokenIssuer interface {
	Issue(subjectEmail string) (string, error)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.NewError(dto.KindValidation, message))
}

func upstreamFailure(c *fiber.Ctx, action string, err error) error {
	slog.Error("upstream operation failed", "action", action, "path", c.Path(), "error", err)
	return c.Status(fiber.StatusBadGateway).JSON(
		dto.NewError(dto.KindUpstream, "Upstream dependency failed"))
}

func parseID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func emailParam(c *fiber.Ctx) (string, bool) {
	email := c.Params("email")
	if err := validate.Var(email, "required,email"); err != nil {
		return "", false
	}
	return email, true
}

// toMap converts a validated payload into the schema-less shape the store
// keeps, preserving the wire field names.
func toMap(v interface{}) map[string]interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{}
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]interface{}{}
	}
	return m
}
