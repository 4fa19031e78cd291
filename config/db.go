package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/lvnzip001/butterworth-bnb/models"

	"golang.org/x/crypto/bcrypt"
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
		q.Set("loc", "UTC")
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
	dbName := envOrDefault("DB_NAME", "bnb_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase creates the default admin, the property record and its three
// room types on a fresh database. Existing rows are left alone.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Email:    envOrDefault("ADMIN_EMAIL", "admin@butterworth.local"),
				Password: string(hash),
				Approved: true,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var bnbCount int64
	DB.Model(&models.Bnb{}).Count(&bnbCount)
	if bnbCount == 0 {
		property := models.Bnb{
			Name:         "Butterworth Guest House",
			Description:  "Family run bed and breakfast",
			Address:      "12 Harbour Road, Butterworth",
			ContactEmail: "stay@butterworth.local",
			ContactPhone: "+27 47 000 0000",
		}
		if err := DB.Create(&property).Error; err != nil {
			log.Printf("warning: failed to seed property: %v", err)
			return
		}
		log.Println("Property seeded")

		roomTypes := []models.RoomType{
			{BnbID: property.ID, AccommodationType: "Standard Room", Description: "Queen bed, en-suite bathroom", PricePerNight: 600, Quantity: 4},
			{BnbID: property.ID, AccommodationType: "Sharing Room", Description: "Two single beds, shared bathroom", PricePerNight: 700, Quantity: 3},
			{BnbID: property.ID, AccommodationType: "Family Room", Description: "Double bed plus bunks, sleeps four", PricePerNight: 800, Quantity: 2},
		}
		if err := DB.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("RoomTypes seeded")
		}
	}
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

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.Bnb{},
		&models.RoomType{},
		&models.Booking{},
		&models.Availability{},
		&models.Checkin{},
		&models.ArchiveBooking{},
		&models.ArchiveRefund{},
		&models.ArchiveCancelledNoPayment{},
		&models.ArchiveCheckinBooking{},
		&models.ArchiveCheckin{},
		&models.ArchiveCheckout{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
