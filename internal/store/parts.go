package store

import (
	"context"
	"database/sql"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/models"
)

func (s *Store) CreatePart(ctx context.Context, part *models.Part) (int64, error) {
	query := `INSERT INTO pc_parts (name, category, price, version) VALUES (?, ?, ?, 1)`
	res, err := s.DB.ExecContext(ctx, query, part.Name, part.Category, part.Price.InexactFloat64())
	if err != nil {
		return 0, wrap("create part", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrap("create part", err)
	}
	part.ID = id
	part.Version = 1
	return id, nil
}

func (s *Store) ListParts(ctx context.Context) ([]models.Part, error) {
	query := `SELECT id, name, category, price, version FROM pc_parts ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, wrap("list parts", err)
	}
	defer rows.Close()

	parts := []models.Part{}
	for rows.Next() {
		var p models.Part
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Version); err != nil {
			return nil, wrap("list parts", err)
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list parts", err)
	}
	return parts, nil
}

func (s *Store) GetPart(ctx context.Context, id int64) (*models.Part, error) {
	query := `SELECT id, name, category, price, version FROM pc_parts WHERE id = ?`
	var p models.Part
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Version)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrap("get part", err)
	}
	return &p, nil
}

// UpdatePart overwrites name, category and price in a single statement.
// A zero part.Version skips the version check.
func (s *Store) UpdatePart(ctx context.Context, part *models.Part) error {
	query := `
		UPDATE pc_parts
		SET name = ?, category = ?, price = ?, version = version + 1
		WHERE id = ? AND (? = 0 OR version = ?)
	`
	res, err := s.DB.ExecContext(ctx, query,
		part.Name, part.Category, part.Price.InexactFloat64(),
		part.ID, part.Version, part.Version,
	)
	if err != nil {
		return wrap("update part", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrap("update part", err)
	}
	if n == 1 {
		return nil
	}

	// Nothing matched: either the row is gone or the version moved on.
	var current int
	err = s.DB.QueryRowContext(ctx, `SELECT version FROM pc_parts WHERE id = ?`, part.ID).Scan(&current)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return wrap("update part", err)
	}
	return ErrConflict
}

func (s *Store) DeletePart(ctx context.Context, id int64) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM pc_parts WHERE id = ?`, id); err != nil {
		return wrap("delete part", err)
	}
	return nil
}
