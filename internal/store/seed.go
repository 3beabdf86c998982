package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/models"
	"github.com/shopspring/decimal"
)

// SeedParts is the catalog inserted into an empty pc_parts table.
var SeedParts = []models.Part{
	{Name: "Intel Core i5 12400F", Category: "Processor", Price: decimal.NewFromInt(9500)},
	{Name: "ASUS B660M Motherboard", Category: "Motherboard", Price: decimal.NewFromInt(7200)},
	{Name: "NVIDIA RTX 3060 12GB", Category: "Graphics Card", Price: decimal.NewFromInt(18500)},
	{Name: "Corsair 16GB DDR4 RAM", Category: "Memory", Price: decimal.NewFromInt(3200)},
	{Name: "Samsung 1TB NVMe SSD", Category: "Storage", Price: decimal.NewFromInt(4400)},
}

func (s *Store) Seed(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM pc_parts").Scan(&count); err != nil {
		return fmt.Errorf("seed: count parts: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range SeedParts {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO pc_parts (name, category, price) VALUES (?, ?, ?)",
			p.Name, p.Category, p.Price.InexactFloat64(),
		); err != nil {
			return fmt.Errorf("seed: insert %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	slog.Info("Seeded catalog", "parts", len(SeedParts))
	return nil
}
