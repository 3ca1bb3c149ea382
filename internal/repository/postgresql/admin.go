package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hadirin/attendance-backend-go/internal/domain/admin"
	"github.com/hadirin/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type adminRepository struct {
	db *database.DB
}

// Create implements admin.AdminRepository.
func (r *adminRepository) Create(ctx context.Context, a admin.Admin) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	a.ID = uuid.NewString()
	query := `
		INSERT INTO admins (id, username, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.Username, a.PasswordHash, a.Role).Scan(&a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return admin.Admin{}, admin.ErrUsernameTaken
		}
		return admin.Admin{}, fmt.Errorf("failed to create admin: %w", err)
	}

	return a, nil
}

// GetByUsername implements admin.AdminRepository.
func (r *adminRepository) GetByUsername(ctx context.Context, username string) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash, role, created_at
		FROM admins
		WHERE username = $1
	`

	var a admin.Admin
	err := q.QueryRow(ctx, query, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.Admin{}, admin.ErrAdminNotFound
		}
		return admin.Admin{}, fmt.Errorf("failed to get admin: %w", err)
	}

	return a, nil
}

func NewAdminRepository(db *database.DB) admin.AdminRepository {
	return &adminRepository{db: db}
}
