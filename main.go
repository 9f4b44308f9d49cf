package main

import (
	"log"

	"cxos/config"
	"cxos/database"
	"cxos/jobs"
	"cxos/logging"
	"cxos/monitoring"
	adminRoutes "cxos/routers/adminRoutes"
	authRoutes "cxos/routers/authRoutes"
	reviewRoutes "cxos/routers/reviewRoutes"
	supportRoutes "cxos/routers/supportRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	logging.Init()
	database.ConnectDb()
	database.ConnectRedis()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(monitoring.MetricsHandler()))

	reviewRoutes.SetupReviewRoutes(app)
	supportRoutes.SetupSupportRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	authRoutes.SetupAuthRoutes(app)

	jobs.InitializeSchedulers()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
