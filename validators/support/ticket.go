package supportValidators

import (
	"strings"

	"cxos/middleware"

	"github.com/gofiber/fiber/v2"
)

// ResolveTicket requires non-empty resolution notes.
func ResolveTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ResolutionNotes string `json:"resolution_notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.ResolutionNotes) == "" {
			errors["resolution_notes"] = "Resolution notes are required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResolveTicket", reqData)
		return c.Next()
	}
}

// AdminTicketList validates the staff listing filters.
func AdminTicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status  string `query:"status"`
			SLARisk bool   `query:"sla_risk"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != "" {
			valid := map[string]bool{"open": true, "in_progress": true, "resolved": true, "escalated": true}
			if !valid[reqData.Status] {
				errors["status"] = "Invalid status! Must be one of: open, in_progress, resolved, escalated."
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminTicketList", reqData)
		return c.Next()
	}
}
