package jobs

import (
	"testing"
	"time"

	"cxos/database"
	"cxos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.SupportTicket{}))
	database.Database = database.DbInstance{Db: db}
	return db
}

func seedTicket(t *testing.T, db *gorm.DB, status string, deadline time.Time) models.SupportTicket {
	t.Helper()

	ticket := models.SupportTicket{
		ReviewID:    "review-1",
		IdentityKey: "customer:cust-42",
		Status:      status,
		AssignedTo:  "care",
		SLADeadline: deadline,
	}
	require.NoError(t, db.Create(&ticket).Error)
	return ticket
}

func TestEscalateOverdueTickets(t *testing.T) {
	db := testDB(t)

	overdue := seedTicket(t, db, models.TicketOpen, time.Now().Add(-time.Hour))
	inProgress := seedTicket(t, db, models.TicketInProgress, time.Now().Add(-time.Minute))
	future := seedTicket(t, db, models.TicketOpen, time.Now().Add(24*time.Hour))
	resolved := seedTicket(t, db, models.TicketResolved, time.Now().Add(-time.Hour))

	assert.EqualValues(t, 2, EscalateOverdueTickets())

	statuses := make(map[string]string)
	var tickets []models.SupportTicket
	require.NoError(t, db.Find(&tickets).Error)
	for _, ticket := range tickets {
		statuses[ticket.ID] = ticket.Status
	}

	assert.Equal(t, models.TicketEscalated, statuses[overdue.ID])
	assert.Equal(t, models.TicketEscalated, statuses[inProgress.ID])
	assert.Equal(t, models.TicketOpen, statuses[future.ID])
	assert.Equal(t, models.TicketResolved, statuses[resolved.ID])
}

func TestEscalateOverdueTicketsNoop(t *testing.T) {
	db := testDB(t)
	seedTicket(t, db, models.TicketOpen, time.Now().Add(24*time.Hour))

	assert.Zero(t, EscalateOverdueTickets())
}
