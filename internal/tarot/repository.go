package tarot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lunarium/arcana/internal/contracts"
)

// Repository implements contracts.CardRepository on Postgres. The
// catalog table is seeded once from BuildDeck and read-only afterwards.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new card repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListAll returns every catalog card ordered by ID.
func (r *Repository) ListAll(ctx context.Context) ([]contracts.Card, error) {
	query := `
		SELECT id, name, arcana, suit, number, keywords, interpretations
		FROM cards
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []contracts.Card
	for rows.Next() {
		var (
			c                   contracts.Card
			suit                *string
			keywordsJSON        []byte
			interpretationsJSON []byte
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Arcana, &suit, &c.Number, &keywordsJSON, &interpretationsJSON); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		if suit != nil {
			c.Suit = contracts.Suit(*suit)
		}
		if err := json.Unmarshal(keywordsJSON, &c.Keywords); err != nil {
			return nil, fmt.Errorf("decode keywords for %s: %w", c.ID, err)
		}
		if err := json.Unmarshal(interpretationsJSON, &c.Interpretations); err != nil {
			return nil, fmt.Errorf("decode interpretations for %s: %w", c.ID, err)
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// Count returns the number of catalog cards.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cards`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return count, nil
}

// SaveBatch upserts catalog cards. Used by the seed command.
func (r *Repository) SaveBatch(ctx context.Context, cards []contracts.Card) error {
	query := `
		INSERT INTO cards (id, name, arcana, suit, number, keywords, interpretations)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			arcana = EXCLUDED.arcana,
			suit = EXCLUDED.suit,
			number = EXCLUDED.number,
			keywords = EXCLUDED.keywords,
			interpretations = EXCLUDED.interpretations
	`

	for _, c := range cards {
		keywordsJSON, err := json.Marshal(c.Keywords)
		if err != nil {
			return fmt.Errorf("encode keywords for %s: %w", c.ID, err)
		}
		interpretationsJSON, err := json.Marshal(c.Interpretations)
		if err != nil {
			return fmt.Errorf("encode interpretations for %s: %w", c.ID, err)
		}

		var suit *string
		if c.Suit != "" {
			s := string(c.Suit)
			suit = &s
		}

		if _, err := r.pool.Exec(ctx, query,
			c.ID, c.Name, c.Arcana, suit, c.Number, keywordsJSON, interpretationsJSON,
		); err != nil {
			return fmt.Errorf("save card %s: %w", c.ID, err)
		}
	}
	return nil
}
