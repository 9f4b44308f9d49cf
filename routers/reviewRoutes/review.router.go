package reviewRoutes

import (
	controller "cxos/controllers/review"
	validator "cxos/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	public := app.Group("/cxos/public")

	public.Post("/submit-review", validator.SubmitReview(), controller.SubmitReview)
	public.Post("/check-eligibility", validator.CheckEligibility(), controller.CheckEligibility)
}
