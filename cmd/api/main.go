package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/toussaint-systems/portfolio-api/internal/config"
	"github.com/toussaint-systems/portfolio-api/internal/handler"
	"github.com/toussaint-systems/portfolio-api/internal/service"
	"github.com/toussaint-systems/portfolio-api/pkg/email"
	"github.com/toussaint-systems/portfolio-api/pkg/logger"
	"github.com/toussaint-systems/portfolio-api/pkg/payment"
	"github.com/toussaint-systems/portfolio-api/pkg/utils"
)

func main() {
	// Load .env (optional outside local development)
	_ = godotenv.Load()

	if err := logger.Initialize(os.Getenv("APP_ENV")); err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.LoadConfig()

	// Missing keys surface as provider auth failures at call time; flag them
	// early so the logs explain what happened.
	if cfg.Resend.APIKey == "" {
		logger.Warn("RESEND_API_KEY is not set, contact relay will fail")
	}
	if cfg.Stripe.SecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY is not set, checkout will fail")
	}

	// Provider clients
	emailService := email.NewEmailService(cfg.Resend.APIKey)
	stripeService := payment.NewStripeService(cfg.Stripe.SecretKey)

	// Validator
	validator := utils.NewValidator()

	// Services
	contactService := service.NewContactService(emailService, validator, cfg.Resend)
	checkoutService := service.NewCheckoutService(stripeService, cfg.SiteURL)

	// Handlers
	contactHandler := handler.NewContactHandler(contactService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, validator)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	app.Get("/health", handler.HealthCheck)

	api := app.Group("/api")

	// Both endpoints are POST-only; the handlers answer 405 themselves so
	// the error envelope stays consistent.
	api.All("/contact", contactHandler.SubmitInquiry)
	api.All("/create-checkout-session", checkoutHandler.CreateCheckoutSession)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
