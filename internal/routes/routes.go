package routes

import (
	"time"

	"github.com/emirhanakgul/toolshop-backend/internal/config"
	"github.com/emirhanakgul/toolshop-backend/internal/handlers"
	"github.com/emirhanakgul/toolshop-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Setup mounts the full route table. Gates compose left to right: the auth
// gate resolves the identity, the admin gate checks the stored role, then
// exactly one handler runs.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	roles middleware.RoleLookup,
	productHandler *handlers.ProductHandler,
	reviewHandler *handlers.ReviewHandler,
	orderHandler *handlers.OrderHandler,
	userHandler *handlers.UserHandler,
	paymentHandler *handlers.PaymentHandler,
	healthHandler *handlers.HealthHandler,
) {
	// 60 req/min per IP across the whole surface
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	protected := middleware.Protected(cfg)
	adminOnly := middleware.AdminRequired(roles, cfg)

	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Check)

	// Products
	app.Get("/product", productHandler.List)
	app.Get("/product/:id", protected, productHandler.GetByID)
	app.Post("/add-product", protected, adminOnly, productHandler.Create)
	app.Delete("/product/:id", protected, adminOnly, productHandler.Delete)

	// Reviews
	app.Get("/reviews", reviewHandler.List)
	app.Post("/add-review", protected, reviewHandler.Create)

	// Orders
	app.Post("/add-order", protected, orderHandler.Create)
	app.Get("/orders", protected, adminOnly, orderHandler.ListAll)
	app.Get("/orders/:email", protected, orderHandler.ListByEmail)
	app.Get("/order/:id", protected, orderHandler.GetByID)
	app.Delete("/delete-order/:id", protected, orderHandler.Delete)

	// Users
	app.Put("/user/admin/:email", protected, adminOnly, userHandler.Promote)
	app.Put("/user/:email", userHandler.UpsertWithToken)
	app.Get("/users", protected, adminOnly, userHandler.ListAll)
	app.Get("/user/:email", protected, userHandler.GetByEmail)
	app.Put("/update-user/:email", protected, userHandler.Update)
	app.Get("/admin/:email", userHandler.AdminFlag)

	// Payments
	app.Post("/create-payment-intent", protected, paymentHandler.CreateIntent)
}
