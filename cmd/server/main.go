package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	_ "modernc.org/sqlite"

	"routecraft-service/internal/adapters/distance"
	"routecraft-service/internal/adapters/repositories"
	"routecraft-service/internal/api"
	"routecraft-service/internal/config"
	"routecraft-service/internal/platform/db"
	"routecraft-service/internal/ports"
	"routecraft-service/internal/services"
)

// main is the application composition root.
// It wires a distance resolver and trip store behind ports and starts
// the HTTP server. The trip store backend follows the environment:
// DATABASE_URL selects Postgres, MONGO_URI selects MongoDB, and the
// default is a local SQLite file.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	seedPath := config.Get("SEED_PATH", "data/seeds/trips.json")
	corsOrigins := strings.Split(config.Get("CORS_ORIGINS", "*"), ",")

	repo, closeRepo, err := openTripRepository(seedPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeRepo()

	resolver, err := openResolver()
	if err != nil {
		log.Fatal(err)
	}

	engine := services.NewEngine(resolver)
	router := api.NewRouter(engine, repo, corsOrigins)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openResolver selects the distance source. The static city table is
// the default; DISTANCE_SOURCE=geo switches to the coordinate-based
// landmark resolver.
func openResolver() (ports.DistanceResolver, error) {
	switch source := config.Get("DISTANCE_SOURCE", "static"); source {
	case "static":
		return distance.NewStaticResolver(), nil
	case "geo":
		return distance.NewGeoResolver(distance.DefaultPlaces()), nil
	default:
		return nil, fmt.Errorf("unknown DISTANCE_SOURCE %q (want static or geo)", source)
	}
}

func openTripRepository(seedPath string) (ports.TripRepository, func(), error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitSchema(pg); err != nil {
			pg.Close()
			return nil, nil, err
		}
		log.Println("Trip store: postgres")
		return repositories.NewSQLTripRepository(pg), func() { pg.Close() }, nil
	}

	if mongoURI := os.Getenv("MONGO_URI"); strings.TrimSpace(mongoURI) != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			return nil, nil, fmt.Errorf("verify mongo connection: %w", err)
		}

		coll := client.Database(config.Get("MONGO_DB", "routecraft")).Collection("trips")
		log.Println("Trip store: mongodb")
		return repositories.NewMongoTripRepository(coll), func() {
			_ = client.Disconnect(context.Background())
		}, nil
	}

	sqlitePath := config.Get("SQLITE_PATH", "data/app.db")
	if dir := filepath.Dir(sqlitePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create sqlite dir %q: %w", dir, err)
		}
	}

	lite, err := openSQLite(sqlitePath)
	if err != nil {
		return nil, nil, err
	}

	// Initialize schema and seed demo data on startup for local runs.
	if err := repositories.InitSchema(lite); err != nil {
		lite.Close()
		return nil, nil, err
	}
	if err := repositories.SeedFromJSON(lite, seedPath); err != nil {
		lite.Close()
		return nil, nil, err
	}

	log.Println("Trip store: sqlite")
	return repositories.NewSQLTripRepository(lite), func() { lite.Close() }, nil
}

func openSQLite(path string) (*sql.DB, error) {
	lite, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", path, err)
	}

	if err := lite.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", path, err)
	}

	return lite, nil
}
