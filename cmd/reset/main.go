package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/osse101/BetEngine_Go/internal/bootstrap"
	"github.com/osse101/BetEngine_Go/internal/config"
	"github.com/osse101/BetEngine_Go/internal/storage"
)

func main() {
	force := flag.Bool("force", false, "skip the confirmation prompt")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if !*force && !confirm(cfg) {
		log.Println("Reset cancelled.")
		return
	}

	ctx := context.Background()

	kv, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open record store: %v", err)
	}
	defer kv.Close()

	log.Printf("Wiping records from %s store...\n", cfg.StoreDriver)
	if err := storage.NewRecords(kv).Wipe(ctx); err != nil {
		log.Fatalf("Failed to wipe records: %v", err)
	}

	log.Println("\n✅ Records reset complete!")
	log.Println("Events, predictions, points and profile will be recreated on next start.")
}

func confirm(cfg *config.Config) bool {
	target := cfg.StoreDriver
	if cfg.StoreDriver == config.StoreDriverSQLite {
		target += " (" + cfg.SQLitePath + ")"
	}
	fmt.Printf("This deletes all persisted records in the %s store. Continue? [y/N] ", target)

	var answer string
	if _, err := fmt.Fscanln(os.Stdin, &answer); err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
