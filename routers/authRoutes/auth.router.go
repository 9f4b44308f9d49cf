package authRoutes

import (
	controller "cxos/controllers/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Get("/generate-otp", controller.GenerateOTP)
	auth.Post("/verify-otp", controller.VerifyOTP)
}
