package supportRoutes

import (
	controller "cxos/controllers/support"
	"cxos/middleware"
	validator "cxos/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	tickets := app.Group("/admin/tickets")

	tickets.Get("/", validator.AdminTicketList(), middleware.StaffJWTMiddleware, controller.AdminTicketList)
	tickets.Post("/:ticket_id/resolve", validator.ResolveTicket(), middleware.StaffJWTMiddleware, controller.ResolveTicket)
}
