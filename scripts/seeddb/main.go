package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"marketplace-catalog/internal/config"
	"marketplace-catalog/internal/database"
	"marketplace-catalog/internal/snapshot"
)

// seeddb loads a catalogue snapshot into the database configured through the
// DB_* environment variables, replacing rows with the same IDs.
func main() {
	path := flag.String("snapshot", "data/catalog.json.gz", "snapshot to load")
	flag.Parse()

	if err := run(*path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := config.NewLogger(cfg.Logger)
	ctx := context.Background()

	snap, err := snapshot.NewFileLoader(logger).Load(ctx, path)
	if err != nil {
		return err
	}

	pool, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Seed(ctx, pool, snap.Products, snap.Sellers, snap.Orders); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	fmt.Printf("Seeded %d products, %d sellers, %d orders from %s\n",
		len(snap.Products), len(snap.Sellers), len(snap.Orders), path)
	return nil
}
