package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/refind-dev/refind/db"
	"github.com/refind-dev/refind/internal/router"
)

func main() {
	var err error

	err = godotenv.Load()

	if err != nil {
		log.Println("No .env file loaded, using environment as-is")
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		if dsn = os.Getenv("SQLITE_PATH"); dsn == "" {
			dsn = "refind.db"
			log.Println("DATABASE_URL and SQLITE_PATH not set, defaulting to refind.db")
		}
	}

	if err = db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter()

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "8000"
		log.Println("PORT not set, defaulting to 8000")
	}

	if err = r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
