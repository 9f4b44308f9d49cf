package supportController

import (
	"errors"
	"time"

	"cxos/database"
	"cxos/middleware"
	"cxos/models"
	"cxos/monitoring"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ResolveTicket closes a ticket with the staff member's notes.
func ResolveTicket(c *fiber.Ctx) error {
	ticketID := c.Params("ticket_id")

	reqData, ok := c.Locals("validatedResolveTicket").(*struct {
		ResolutionNotes string `json:"resolution_notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var ticket models.SupportTicket
	if err := db.Where("id = ?", ticketID).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ticket!", nil)
	}

	ticket.Status = models.TicketResolved
	ticket.ResolutionNotes = &reqData.ResolutionNotes

	if err := db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve ticket!", nil)
	}

	monitoring.TicketsResolved.Inc()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket resolved successfully!", ticket)
}

// AdminTicketList returns tickets ordered by SLA deadline, optionally filtered
// by status or narrowed to tickets at SLA risk (due within 4 hours).
func AdminTicketList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminTicketList").(*struct {
		Status  string `query:"status"`
		SLARisk bool   `query:"sla_risk"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Model(&models.SupportTicket{})

	if reqData.Status != "" {
		db = db.Where("status = ?", reqData.Status)
	}
	if reqData.SLARisk {
		db = db.Where("status IN ?", []string{models.TicketOpen, models.TicketInProgress}).
			Where("sla_deadline <= ?", time.Now().Add(4*time.Hour))
	}

	var tickets []models.SupportTicket
	if err := db.Order("sla_deadline ASC").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched!", fiber.Map{
		"tickets": tickets,
	})
}
