package db

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func GetDB() *gorm.DB {
	return DB
}

// Init establishes the DB connection without running migrations.
// DATABASE_URL selects Postgres; without it a local SQLite file is
// used so the service runs out of the box in development.
func Init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL != "" {
		DB, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
		})
	} else {
		log.Println("DATABASE_URL is not set, falling back to local SQLite")
		DB, err = gorm.Open(sqlite.Open("clinic.db"), &gorm.Config{})
	}
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	log.Println("✅ Database connection established successfully!")
}
