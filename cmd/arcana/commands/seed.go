package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lunarium/arcana/internal/tarot"
	"github.com/lunarium/arcana/pkg/config"
	"github.com/lunarium/arcana/pkg/database"
	"github.com/lunarium/arcana/pkg/logger"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the card catalog",
	Long: `Builds the standard 78-card deck and writes it to the database.

Idempotent: existing cards are updated in place, so the command is safe
to re-run after deck text changes.

Example:
  go run ./cmd/arcana seed`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Arcana Catalog Seeder ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	deck := tarot.BuildDeck()
	repo := tarot.NewRepository(db.Pool)

	if err := repo.SaveBatch(ctx, deck); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count cards: %w", err)
	}

	log.WithField("cards", count).Info("Card catalog seeded")
	fmt.Printf("\nSeeded %d cards\n", count)
	return nil
}
