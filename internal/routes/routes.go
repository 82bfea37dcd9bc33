package routes

import (
	"time"

	"github.com/colipio/gtm-backend/internal/config"
	"github.com/colipio/gtm-backend/internal/handlers"
	"github.com/colipio/gtm-backend/internal/metrics"
	"github.com/colipio/gtm-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	accountHandler *handlers.AccountHandler,
	contactHandler *handlers.ContactHandler,
	dealHandler *handlers.DealHandler,
	taskHandler *handlers.TaskHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Prometheus scrape endpoint stays outside /api and its rate limiter.
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// All CRM routes require a verified bearer token. The middleware is
	// applied per group so it can never leak onto the public routes above.
	jwt := middleware.JWTProtected(cfg)

	accounts := api.Group("/accounts", jwt)
	accounts.Get("/", accountHandler.List)
	accounts.Post("/", accountHandler.Create)

	contacts := api.Group("/contacts", jwt)
	contacts.Get("/", contactHandler.List)
	contacts.Post("/", contactHandler.Create)

	deals := api.Group("/deals", jwt)
	deals.Get("/", dealHandler.List)
	deals.Post("/", dealHandler.Create)
	deals.Put("/:id", dealHandler.Update)

	tasks := api.Group("/tasks", jwt)
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", taskHandler.Create)
	tasks.Put("/:id", taskHandler.Update)

	users := api.Group("/users", jwt)
	users.Get("/me", userHandler.Me)
}
