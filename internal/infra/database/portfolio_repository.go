package database

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/sitelab/sitelab-api/internal/entity"
)

type PortfolioRepository struct {
	DB *sql.DB
}

func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{DB: db}
}

func (r *PortfolioRepository) List(ctx context.Context, featuredOnly bool) ([]*entity.PortfolioItem, error) {
	builder := psql.Select(
		"id", "title", "client_name", "industry", "problem", "solution", "outcome",
		"image_url", "COALESCE(before_image, '')", "COALESCE(after_image, '')",
		"COALESCE(live_url, '')", "featured", "sort_order", "created_at",
	).From("portfolio_items").OrderBy("sort_order ASC")

	if featuredOnly {
		builder = builder.Where(sq.Eq{"featured": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*entity.PortfolioItem
	for rows.Next() {
		var item entity.PortfolioItem
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.ClientName,
			&item.Industry,
			&item.Problem,
			&item.Solution,
			&item.Outcome,
			&item.ImageURL,
			&item.BeforeImage,
			&item.AfterImage,
			&item.LiveURL,
			&item.Featured,
			&item.Order,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *PortfolioRepository) Upsert(ctx context.Context, item *entity.PortfolioItem) error {
	query := `
		INSERT INTO portfolio_items (
			id, title, client_name, industry, problem, solution, outcome,
			image_url, before_image, after_image, live_url, featured, sort_order, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			client_name = EXCLUDED.client_name,
			industry = EXCLUDED.industry,
			problem = EXCLUDED.problem,
			solution = EXCLUDED.solution,
			outcome = EXCLUDED.outcome,
			image_url = EXCLUDED.image_url,
			before_image = EXCLUDED.before_image,
			after_image = EXCLUDED.after_image,
			live_url = EXCLUDED.live_url,
			featured = EXCLUDED.featured,
			sort_order = EXCLUDED.sort_order
	`

	_, err := r.DB.ExecContext(ctx, query,
		item.ID,
		item.Title,
		item.ClientName,
		item.Industry,
		item.Problem,
		item.Solution,
		item.Outcome,
		item.ImageURL,
		nullString(item.BeforeImage),
		nullString(item.AfterImage),
		nullString(item.LiveURL),
		item.Featured,
		item.Order,
		item.CreatedAt,
	)

	return err
}
