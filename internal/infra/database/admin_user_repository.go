package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sitelab/sitelab-api/internal/entity"
)

type AdminUserRepository struct {
	DB *sql.DB
}

func NewAdminUserRepository(db *sql.DB) *AdminUserRepository {
	return &AdminUserRepository{DB: db}
}

func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	query := `SELECT id, email, name, password, created_at FROM admin_users WHERE email = $1`

	var user entity.AdminUser
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *AdminUserRepository) Create(ctx context.Context, user *entity.AdminUser) error {
	query := `
		INSERT INTO admin_users (id, email, name, password, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}
