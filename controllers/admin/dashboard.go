package adminController

import (
	"time"

	"cxos/database"
	"cxos/middleware"
	"cxos/models"

	"github.com/gofiber/fiber/v2"
)

// Dashboard returns the staff overview: review metrics, SLA posture, recent
// reviews and the most urgent tickets.
func Dashboard(c *fiber.Ctx) error {
	db := database.Database.Db
	since := time.Now().AddDate(0, 0, -7)

	var totalReviews int64
	db.Model(&models.Review{}).Where("created_at >= ?", since).Count(&totalReviews)

	var avgRating float64
	db.Model(&models.Review{}).Where("created_at >= ?", since).
		Select("COALESCE(AVG(rating), 0)").Scan(&avgRating)

	var promoters, detractors int64
	db.Model(&models.Review{}).Where("created_at >= ? AND sentiment = ?", since, models.SentimentPromoter).Count(&promoters)
	db.Model(&models.Review{}).Where("created_at >= ? AND sentiment = ?", since, models.SentimentDetractor).Count(&detractors)

	promotersPct := 0.0
	detractorsPct := 0.0
	if totalReviews > 0 {
		promotersPct = float64(promoters) / float64(totalReviews) * 100
		detractorsPct = float64(detractors) / float64(totalReviews) * 100
	}

	var openTickets, atRiskTickets, escalatedTickets int64
	active := []string{models.TicketOpen, models.TicketInProgress}
	db.Model(&models.SupportTicket{}).Where("status IN ?", active).Count(&openTickets)
	db.Model(&models.SupportTicket{}).Where("status IN ?", active).
		Where("sla_deadline <= ?", time.Now().Add(4*time.Hour)).Count(&atRiskTickets)
	db.Model(&models.SupportTicket{}).Where("status = ?", models.TicketEscalated).Count(&escalatedTickets)

	recentQuery := db.Model(&models.Review{}).Order("created_at DESC").Limit(10)
	if from := c.Query("from"); from != "" {
		recentQuery = recentQuery.Where("created_at >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		recentQuery = recentQuery.Where("created_at <= ?", to)
	}

	var recentReviews []models.Review
	if err := recentQuery.Find(&recentReviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	var urgentTickets []models.SupportTicket
	if err := db.Where("status IN ?", []string{models.TicketOpen, models.TicketInProgress, models.TicketEscalated}).
		Order("sla_deadline ASC").Limit(10).Find(&urgentTickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched!", fiber.Map{
		"metrics": fiber.Map{
			"total_reviews":  totalReviews,
			"avg_rating":     avgRating,
			"promoters_pct":  promotersPct,
			"detractors_pct": detractorsPct,
		},
		"sla": fiber.Map{
			"open_tickets":      openTickets,
			"at_risk_tickets":   atRiskTickets,
			"escalated_tickets": escalatedTickets,
		},
		"recent_reviews": recentReviews,
		"urgent_tickets": urgentTickets,
	})
}
