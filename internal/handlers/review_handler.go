package handlers

import (
	"github.com/emirhanakgul/toolshop-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	reviews DocumentCollection
}

func NewReviewHandler(reviews DocumentCollection) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List handles GET /reviews with the same query-filter contract as products.
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	docs, err := h.reviews.Find(c.UserContext(), c.Queries())
	if err != nil {
		return upstreamFailure(c, "list reviews", err)
	}
	return c.JSON(docs)
}

// Create handles POST /add-review.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var payload dto.ReviewPayload
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Malformed review body")
	}
	if err := validate.Struct(&payload); err != nil {
		return badRequest(c, err.Error())
	}

	id, err := h.reviews.Insert(c.UserContext(), toMap(payload))
	if err != nil {
		return upstreamFailure(c, "create review", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateResponse{
		Acknowledged: true,
		InsertedID:   id.String(),
	})
}
