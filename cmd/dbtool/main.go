package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"courier-admin-service/internal/adapters/repositories"
	"courier-admin-service/internal/config"
	"courier-admin-service/internal/platform/db"
)

// dbtool initializes the Postgres schema and optionally seeds baseline
// data (stores, drivers, customers, managers) from a JSON file.
func main() {
	seed := flag.Bool("seed", false, "seed baseline data after schema init")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	ctx := context.Background()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, database); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if !*seed {
		return
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/bootstrap.json")
	log.Printf("Seeding database from %s...", seedPath)
	if err := repositories.SeedFromJSON(ctx, database, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
