package adminRoutes

import (
	adminController "cxos/controllers/admin"
	reviewController "cxos/controllers/review"
	"cxos/middleware"
	reviewValidator "cxos/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin")

	admin.Post("/login", adminController.Login)
	admin.Get("/dashboard", middleware.StaffJWTMiddleware, adminController.Dashboard)
	admin.Get("/reviews", reviewValidator.AdminReviewList(), middleware.StaffJWTMiddleware, reviewController.AdminReviewList)
}
