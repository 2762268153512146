package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/services"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "frontdesk_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

func features(bedType string, amenities ...string) datatypes.JSON {
	quoted := make([]string, 0, len(amenities))
	for _, a := range amenities {
		quoted = append(quoted, fmt.Sprintf("%q", a))
	}
	return datatypes.JSON([]byte(fmt.Sprintf(`{"bedType":%q,"amenities":[%s]}`, bedType, strings.Join(quoted, ","))))
}

// SeedDatabase provisions the initial room inventory and the default rate
// card. Both sides are count-guarded, so rerunning at every boot is safe.
func SeedDatabase() error {
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", Type: models.RoomTypeStandard, Floor: "1", MaxOccupancy: 2, Price: decimal.NewFromInt(1200), Status: models.RoomStatusClean, Features: features("queen", "wifi", "tv")},
			{RoomNumber: "102", Type: models.RoomTypeStandard, Floor: "1", MaxOccupancy: 2, Price: decimal.NewFromInt(1200), Status: models.RoomStatusClean, Features: features("twin", "wifi", "tv")},
			{RoomNumber: "103", Type: models.RoomTypeHopIn, Floor: "1", MaxOccupancy: 1, Price: decimal.NewFromInt(800), Status: models.RoomStatusClean, Features: features("single", "wifi")},
			{RoomNumber: "201", Type: models.RoomTypeSuperior, Floor: "2", MaxOccupancy: 3, Price: decimal.NewFromInt(1800), Status: models.RoomStatusClean, Features: features("queen", "wifi", "tv", "minibar")},
			{RoomNumber: "202", Type: models.RoomTypeDeluxe, Floor: "2", MaxOccupancy: 4, Price: decimal.NewFromInt(2500), Status: models.RoomStatusClean, Features: features("king", "wifi", "tv", "minibar", "bathtub")},
			{RoomNumber: "301", Type: models.RoomTypeFamily, Floor: "3", MaxOccupancy: 5, Price: decimal.NewFromInt(3200), Status: models.RoomStatusClean, Features: features("king+twin", "wifi", "tv", "minibar")},
			{RoomNumber: "401", Type: models.RoomTypeZenith, Floor: "4", MaxOccupancy: 2, Price: decimal.NewFromInt(5000), Status: models.RoomStatusClean, Features: features("king", "wifi", "tv", "minibar", "bathtub", "terrace")},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			return fmt.Errorf("failed to seed rooms: %w", err)
		}
		log.Println("Rooms seeded")
	}

	if err := services.NewPricingService(DB).InitializeDefaults(); err != nil {
		return fmt.Errorf("failed to seed default pricing: %w", err)
	}
	log.Println("Default pricing ensured")
	return nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Room{},
		&models.RoomTypePricing{},
		&models.PricingHistory{},
		&models.WalkInBooking{},
	); err != nil {
		return err
	}

	return SeedDatabase()
}
