package store

import (
	"context"
)

type DashboardStats struct {
	TotalParts     int
	TotalOrders    int
	OrdersByStatus map[string]int
}

func (s *Store) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		OrdersByStatus: make(map[string]int),
	}

	if err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM pc_parts").Scan(&stats.TotalParts); err != nil {
		return nil, wrap("stats", err)
	}

	if err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders").Scan(&stats.TotalOrders); err != nil {
		return nil, wrap("stats", err)
	}

	rows, err := s.DB.QueryContext(ctx, "SELECT status, COUNT(*) FROM orders GROUP BY status")
	if err != nil {
		return nil, wrap("stats", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, wrap("stats", err)
		}
		stats.OrdersByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("stats", err)
	}

	return stats, nil
}
