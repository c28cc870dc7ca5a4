package handlers

import (
	"github.com/emirhanakgul/toolshop-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orders DocumentCollection
}

func NewOrderHandler(orders DocumentCollection) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create handles POST /add-order. The order references its user by the
// userEmail field as a plain string; no referential integrity is enforced.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var payload dto.OrderPayload
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Malformed order body")
	}
	if err := validate.Struct(&payload); err != nil {
		return badRequest(c, err.Error())
	}

	id, err := h.orders.Insert(c.UserContext(), toMap(payload))
	if err != nil {
		return upstreamFailure(c, "create order", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateResponse{
		Acknowledged: true,
		InsertedID:   id.String(),
	})
}

// ListAll handles GET /orders (admin only).
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	docs, err := h.orders.Find(c.UserContext(), nil)
	if err != nil {
		return upstreamFailure(c, "list orders", err)
	}
	return c.JSON(docs)
}

// ListByEmail handles GET /orders/:email.
func (h *OrderHandler) ListByEmail(c *fiber.Ctx) error {
	email, ok := emailParam(c)
	if !ok {
		return badRequest(c, "Invalid email")
	}

	docs, err := h.orders.Find(c.UserContext(), map[string]string{"userEmail": email})
	if err != nil {
		return upstreamFailure(c, "list orders by email", err)
	}
	return c.JSON(docs)
}

// GetByID handles GET /order/:id, returning the order or null.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid order id")
	}

	doc, err := h.orders.FindByID(c.UserContext(), id)
	if err != nil {
		return upstreamFailure(c, "get order", err)
	}
	if doc == nil {
		return c.JSON(nil)
	}
	return c.JSON(doc)
}

// Delete handles DELETE /delete-order/:id.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid order id")
	}

	count, err := h.orders.DeleteByID(c.UserContext(), id)
	if err != nil {
		return upstreamFailure(c, "delete order", err)
	}
	return c.JSON(dto.DeleteResponse{Acknowledged: true, DeletedCount: count})
}
