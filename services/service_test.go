package services

import (
	"fmt"
	"testing"

	"frontdesk-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. Write transactions take
// the write lock at BEGIN (_txlock=immediate) and the pool is capped at one
// connection, so concurrent transactions serialize the way MySQL row locks
// serialize them in production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000&_txlock=immediate", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Room{},
		&models.RoomTypePricing{},
		&models.PricingHistory{},
		&models.WalkInBooking{},
	))
	return db
}

func createRoom(t *testing.T, db *gorm.DB, number string, rt models.RoomType, price int64, status string) *models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber:   number,
		Type:         rt,
		Status:       status,
		Floor:        string(number[0]),
		Price:        decimal.NewFromInt(price),
		MaxOccupancy: 2,
	}
	require.NoError(t, db.Create(&room).Error)
	return &room
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)),
		"expected %s, got %s", want, got)
}
