package handlers

import (
	"github.com/emirhanakgul/toolshop-backend/internal/dto"
	"github.com/emirhanakgul/toolshop-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	products DocumentCollection
}

func NewProductHandler(products DocumentCollection) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /product. Query parameters become an exact field-match
// filter; no parameters means the whole collection. Results are unpaginated
// (accepted limitation, surfaced by the store's scan warning).
func (h *ProductHandler) List(c *fiber.Ctx) error {
	docs, err := h.products.Find(c.UserContext(), c.Queries())
	if err != nil {
		return upstreamFailure(c, "list products", err)
	}
	return c.JSON(docs)
}

// GetByID handles GET /product/:id. A missing id is an empty array with
// HTTP 200, not a 404.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid product id")
	}

	doc, err := h.products.FindByID(c.UserContext(), id)
	if err != nil {
		return upstreamFailure(c, "get product", err)
	}
	if doc == nil {
		return c.JSON([]models.Document{})
	}
	return c.JSON([]models.Document{*doc})
}

// Create handles POST /add-product (admin only).
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var payload dto.ProductPayload
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Malformed product body")
	}
	if err := validate.Struct(&payload); err != nil {
		return badRequest(c, err.Error())
	}

	id, err := h.products.Insert(c.UserContext(), toMap(payload))
	if err != nil {
		return upstreamFailure(c, "create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateResponse{
		Acknowledged: true,
		InsertedID:   id.String(),
	})
}

// Delete handles DELETE /product/:id (admin only). Deleting an id that does
// not exist reports a zero count, not an error.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid product id")
	}

	count, err := h.products.DeleteByID(c.UserContext(), id)
	if err != nil {
		return upstreamFailure(c, "delete product", err)
	}
	return c.JSON(dto.DeleteResponse{Acknowledged: true, DeletedCount: count})
}
