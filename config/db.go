package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-backend/models"
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
	dbName := envOrDefault("DB_NAME", "hostel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase fills empty tables with a default admin, starter rooms and
// mess plans, and the settings row. Each block is guarded by a count so a
// populated database is left alone.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.User{}).Where("admin = ?", true).Count(&adminCount)
	if adminCount == 0 {
		password := envOrDefault("ADMIN_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				Username: envOrDefault("ADMIN_USERNAME", "admin"),
				Email:    envOrDefault("ADMIN_EMAIL", "admin@hostel.local"),
				Password: string(hash),
				Admin:    true,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{Name: "Room 101", Size: 2, AttachedBathroom: true, Status: "A", Price: 4500, Description: "Double sharing with attached bathroom"},
			{Name: "Room 102", Size: 2, AttachedBathroom: false, Status: "A", Price: 3500, Description: "Double sharing, common bathroom"},
			{Name: "Room 201", Size: 1, AttachedBathroom: true, Status: "A", Price: 6000, Description: "Single occupancy with attached bathroom"},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	var messCount int64
	DB.Model(&models.Mess{}).Count(&messCount)
	if messCount == 0 {
		messes := []models.Mess{
			{Name: "Veg Plan", Description: "Three vegetarian meals a day", Status: "A", Price: 2500},
			{Name: "Standard Plan", Description: "Three meals, non-veg twice a week", Status: "A", Price: 3000},
		}
		if err := DB.Create(&messes).Error; err != nil {
			log.Printf("warning: failed to seed mess plans: %v", err)
		} else {
			log.Println("Mess plans seeded")
		}
	}

	var settingCount int64
	DB.Model(&models.PortalSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.PortalSetting{
			Name:  envOrDefault("PORTAL_NAME", "Hostel Portal"),
			Email: envOrDefault("ADMIN_EMAIL", "admin@hostel.local"),
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed portal settings: %v", err)
		} else {
			log.Println("Portal settings seeded")
		}
	}
}

// Migrate runs AutoMigrate in parent-before-child order. Split out so tests
// can run it against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Mess{},
		&models.RoomBooking{},
		&models.MessBooking{},
		&models.Announcement{},
		&models.Ticket{},
		&models.TicketReply{},
		&models.PortalSetting{},
	)
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

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
