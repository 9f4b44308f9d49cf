package eligibility

import (
	"context"
	"testing"
	"time"

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

	require.NoError(t, db.AutoMigrate(&models.EligibilityRecord{}))
	return db
}

func TestGormCacheCheckAbsentKey(t *testing.T) {
	cache := NewGormCache(testDB(t))

	status, err := cache.Check(context.Background(), "customer:unknown")
	require.NoError(t, err)
	assert.True(t, status.Eligible)
}

func TestGormCacheRecordThenBlocked(t *testing.T) {
	cache := NewGormCache(testDB(t))
	ctx := context.Background()

	now := time.Now()
	next := now.AddDate(0, 6, 0)
	require.NoError(t, cache.Record(ctx, "guest:9876543210", now, next))

	status, err := cache.Check(ctx, "guest:9876543210")
	require.NoError(t, err)
	assert.False(t, status.Eligible)
	assert.WithinDuration(t, next, status.NextAllowedAt, time.Second)
}

func TestGormCacheExpiredWindowIsEligible(t *testing.T) {
	cache := NewGormCache(testDB(t))
	ctx := context.Background()

	past := time.Now().AddDate(0, -7, 0)
	require.NoError(t, cache.Record(ctx, "guest:9876543210", past, past.AddDate(0, 6, 0)))

	status, err := cache.Check(ctx, "guest:9876543210")
	require.NoError(t, err)
	assert.True(t, status.Eligible)
}

func TestGormCacheUpsertLastWriterWins(t *testing.T) {
	db := testDB(t)
	cache := NewGormCache(db)
	ctx := context.Background()

	first := time.Now().Add(-time.Hour)
	second := time.Now()
	require.NoError(t, cache.Record(ctx, "customer:cust-42", first, first.AddDate(0, 6, 0)))
	require.NoError(t, cache.Record(ctx, "customer:cust-42", second, second.AddDate(0, 6, 0)))

	// One row per key; the later write owns it.
	var count int64
	db.Model(&models.EligibilityRecord{}).Count(&count)
	assert.EqualValues(t, 1, count)

	var record models.EligibilityRecord
	require.NoError(t, db.Where("identity_key = ?", "customer:cust-42").First(&record).Error)
	assert.WithinDuration(t, second, record.LastReviewDate, time.Second)
}

func TestGormCacheKeysAreIndependent(t *testing.T) {
	cache := NewGormCache(testDB(t))
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, cache.Record(ctx, "guest:111", now, now.AddDate(0, 6, 0)))

	status, err := cache.Check(ctx, "guest:222")
	require.NoError(t, err)
	assert.True(t, status.Eligible)
}
