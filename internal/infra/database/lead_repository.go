package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	sq "github.com/Masterminds/squirrel"

	"github.com/sitelab/sitelab-api/internal/entity"
	"github.com/sitelab/sitelab-api/internal/usecase"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, name, email, COALESCE(business_type, ''), COALESCE(message, ''), source, status, created_at, updated_at`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, business_type, message, source, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		nullString(lead.BusinessType),
		nullString(lead.Message),
		lead.Source,
		lead.Status,
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	if err != nil {
		log.Printf("❌ leads insert failed: %v", err)
		return err
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	var lead entity.Lead
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.BusinessType,
		&lead.Message,
		&lead.Source,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &lead, nil
}

func (r *LeadRepository) List(ctx context.Context, opts usecase.ListOptions) ([]*entity.Lead, int, error) {
	builder := psql.Select(
		"id", "name", "email", "COALESCE(business_type, '')", "COALESCE(message, '')",
		"source", "status", "created_at", "updated_at",
	).From("leads")

	countBuilder := psql.Select("COUNT(*)").From("leads")

	if opts.Status != "" {
		builder = builder.Where(sq.Eq{"status": opts.Status})
		countBuilder = countBuilder.Where(sq.Eq{"status": opts.Status})
	}

	builder = builder.
		OrderBy(orderClause(opts)).
		Limit(uint64(limitOrDefault(opts.Limit))).
		Offset(uint64(opts.Offset))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		var lead entity.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Email,
			&lead.BusinessType,
			&lead.Message,
			&lead.Source,
			&lead.Status,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		leads = append(leads, &lead)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

func (r *LeadRepository) Update(ctx context.Context, id string, update usecase.LeadUpdate) (*entity.Lead, error) {
	builder := psql.Update("leads").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + leadColumns)

	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var lead entity.Lead
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.BusinessType,
		&lead.Message,
		&lead.Source,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &lead, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *LeadRepository) Stats(ctx context.Context) (*usecase.LeadStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'NEW'),
			COUNT(*) FILTER (WHERE status = 'CONTACTED'),
			COUNT(*) FILTER (WHERE status = 'QUALIFIED'),
			COUNT(*) FILTER (WHERE status = 'CONVERTED'),
			COUNT(*) FILTER (WHERE created_at >= date_trunc('month', NOW()))
		FROM leads
	`

	var stats usecase.LeadStats
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&stats.Total,
		&stats.New,
		&stats.Contacted,
		&stats.Qualified,
		&stats.Converted,
		&stats.ThisMonth,
	)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return 50
	}
	return limit
}

func orderClause(opts usecase.ListOptions) string {
	column := "created_at"
	if opts.OrderBy == "updated_at" {
		column = "updated_at"
	}
	direction := "DESC"
	if opts.Order == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}
