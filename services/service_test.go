package services_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/carepoint/clinic-backend/models"
)

// setupDB opens a throwaway in-memory database, migrated and isolated
// per test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Doctor{}, &models.Appointment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Name:     "Test Patient",
		Email:    fmt.Sprintf("patient-%s@test.com", uuid.NewString()[:8]),
		Password: "not-a-real-hash",
		Role:     models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedDoctor(t *testing.T, db *gorm.DB) models.Doctor {
	t.Helper()
	doctor := models.Doctor{
		Name:           "Dr. Test",
		Specialization: "Cardiology",
		Email:          fmt.Sprintf("doctor-%s@test.com", uuid.NewString()[:8]),
	}
	if err := db.Create(&doctor).Error; err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return doctor
}
