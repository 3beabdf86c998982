package store

import (
	"context"
	"database/sql"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/models"
)

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, password, role FROM "user" WHERE username = ?`
	row := s.DB.QueryRowContext(ctx, query, username)

	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Role); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, wrap("get user", err)
	}
	return &user, nil
}

// CreateUser stores an already hashed password.
func (s *Store) CreateUser(ctx context.Context, username, hashedPassword string, role models.Role) (int64, error) {
	query := `INSERT INTO "user" (username, password, role) VALUES (?, ?, ?)`
	res, err := s.DB.ExecContext(ctx, query, username, hashedPassword, string(role))
	if isUniqueViolation(err) {
		return 0, ErrUsernameTaken
	}
	if err != nil {
		return 0, wrap("create user", err)
	}
	return res.LastInsertId()
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM "user"`).Scan(&count); err != nil {
		return 0, wrap("count users", err)
	}
	return count, nil
}
