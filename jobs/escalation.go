package jobs

import (
	"time"

	"cxos/database"
	"cxos/logging"
	"cxos/models"
	"cxos/monitoring"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// EscalateOverdueTickets marks active tickets past their SLA deadline as
// escalated. Returns the number of tickets touched.
func EscalateOverdueTickets() int64 {
	db := database.Database.Db

	result := db.Model(&models.SupportTicket{}).
		Where("status IN ?", []string{models.TicketOpen, models.TicketInProgress}).
		Where("sla_deadline <= ?", time.Now()).
		Update("status", models.TicketEscalated)
	if result.Error != nil {
		logging.Error("sla escalation sweep failed", logrus.Fields{"error": result.Error.Error()})
		return 0
	}

	if result.RowsAffected > 0 {
		monitoring.TicketsEscalated.Add(float64(result.RowsAffected))
		logging.Warn("tickets escalated past sla deadline", logrus.Fields{"count": result.RowsAffected})
	}
	return result.RowsAffected
}

// InitializeSchedulers starts the background sweeps.
func InitializeSchedulers() *cron.Cron {
	c := cron.New()

	c.AddFunc("*/10 * * * *", func() {
		EscalateOverdueTickets()
	})

	c.Start()
	logging.Info("sla escalation scheduler started", logrus.Fields{"interval": "10m"})
	return c
}
