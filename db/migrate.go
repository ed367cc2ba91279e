package db

import (
	"fmt"
	"log"

	"github.com/carepoint/clinic-backend/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
