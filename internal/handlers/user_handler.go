package handlers

import (
	"log/slog"

	"github.com/emirhanakgul/toolshop-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	users  UserStore
	tokens TokenIssuer
}

func NewUserHandler(users UserStore, tokens TokenIssuer) *UserHandler {
	return &UserHandler{users: users, tokens: tokens}
}

// UpsertWithToken handles PUT /user/:email — the login flow. The record is
// created or merged, then a fresh token for the email is returned. An empty
// body is valid and still creates the record.
func (h *UserHandler) UpsertWithToken(c *fiber.Ctx) error {
	email, ok := emailParam(c)
	if !ok {
		return badRequest(c, "Invalid email")
	}

	var req dto.UpsertUserRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Malformed user body")
		}
	}

	if _, err := h.users.Upsert(c.UserContext(), email, req); err != nil {
		return upstreamFailure(c, "upsert user", err)
	}

	token, err := h.tokens.Issue(email)
	if err != nil {
		slog.Error("token issue failed", "subject", email, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.ErrorResponse{Error: true, Message: "Internal server error"})
	}

	return c.JSON(dto.UpsertUserResponse{
		Result: dto.UpsertResult{Acknowledged: true, Email: email},
		Token:  token,
	})
}

// Update handles PUT /update-user/:email — same merge as the login upsert,
// without issuing a token.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	email, ok := emailParam(c)
	if !ok {
		return badRequest(c, "Invalid email")
	}

	var req dto.UpsertUserRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Malformed user body")
		}
	}

	if _, err := h.users.Upsert(c.UserContext(), email, req); err != nil {
		return upstreamFailure(c, "update user", err)
	}
	return c.JSON(dto.UpsertResult{Acknowledged: true, Email: email})
}

// GetByEmail handles GET /user/:email, returning the record or null.
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	email, ok := emailParam(c)
	if !ok {
		return badRequest(c, "Invalid email")
	}

	user, err := h.users.ByEmail(c.UserContext(), email)
	if err != nil {
		return upstreamFailure(c, "get user", err)
	}
	if user == nil {
		return c.JSON(nil)
	}
	return c.JSON(user)
}

// ListAll handles GET /users (admin only).
func (h *UserHandler) ListAll(c *fiber.Ctx) error {
	users, err := h.users.All(c.UserContext())
	if err != nil {
		return upstreamFailure(c, "list users", err)
	}
	return c.JSON(users)
}

// Promote handles PUT /user/admin/:email (admin only). Promoting an email
// with no record matches 0 rows and creates nothing.
func (h *UserHandler) Promote(c *fiber.Ctx) error {
	email, ok := emailParam(c)
	if !ok {
		return badRequest(c, "Invalid email")
	}

	count, err := h.users.Promote(c.UserContext(), email)
	if err != nil {
		return upstreamFailure(c, "promote user", err)
	}
	return c.JSON(dto.PromoteResponse{Acknowledged: true, MatchedCount: count})
}

// AdminFlag handles GET /admin/:email — public probe used by the frontend
// to toggle admin UI. An unknown email reports false.
func (h *UserHandler) AdminFlag(c *fiber.Ctx) error {
	email, ok := emailParam(c)
	if !ok {
		return badRequest(c, "Invalid email")
	}

	isAdmin, err := h.users.IsAdmin(c.UserContext(), email)
	if err != nil {
		return upstreamFailure(c, "admin probe", err)
	}
	return c.JSON(dto.AdminFlagResponse{Admin: isAdmin})
}
