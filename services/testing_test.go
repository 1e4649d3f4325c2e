package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, admin bool) models.User {
	t.Helper()

	hash, err := utils.HashPassword("secret-password")
	require.NoError(t, err)
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hash,
		Admin:    admin,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestRoom(t *testing.T, db *gorm.DB, name string) models.Room {
	t.Helper()

	room := models.Room{Name: name, Size: 2, AttachedBathroom: true, Status: "A", Price: 4500, Description: "test room"}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func newPortalSetting(name, email string) models.PortalSetting {
	return models.PortalSetting{
		Name:        name,
		Email:       email,
		MessTimings: datatypes.JSON([]byte(`{"breakfast":"07:30","lunch":"12:30","dinner":"19:30"}`)),
	}
}

func createTestMess(t *testing.T, db *gorm.DB, name string) models.Mess {
	t.Helper()

	mess := models.Mess{Name: name, Description: "test plan", Status: "A", Price: 2500}
	require.NoError(t, db.Create(&mess).Error)
	return mess
}
