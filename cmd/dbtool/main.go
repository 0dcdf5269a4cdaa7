package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"routecraft-service/internal/adapters/repositories"
	"routecraft-service/internal/config"
	"routecraft-service/internal/platform/db"
)

// dbtool initializes the trips schema and loads seed bookings into
// either Postgres (DATABASE_URL) or the local SQLite file.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	var (
		store *sql.DB
		err   error
	)

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		store, err = db.Open(databaseURL)
	} else {
		store, err = sql.Open("sqlite", config.Get("SQLITE_PATH", "data/app.db"))
	}
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/trips.json")
	initAndSeed(store, seedPath)
}

func initAndSeed(store *sql.DB, seedPath string) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(store); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(store, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
