package main

import (
	"context"
	"flag"
	"log"

	_ "github.com/joho/godotenv/autoload"

	"koinonia/internal/database"
	"koinonia/internal/seed"
)

func main() {
	seedDir := flag.String("dir", "seed", "directory containing the seed JSON files")
	flag.Parse()

	pool, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	loader := seed.NewLoader(pool)

	if err := loader.LoadAll(context.Background(), *seedDir); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
