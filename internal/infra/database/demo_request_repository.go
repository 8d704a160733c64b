package database

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"math"

	sq "github.com/Masterminds/squirrel"

	"github.com/sitelab/sitelab-api/internal/entity"
	"github.com/sitelab/sitelab-api/internal/usecase"
)

type DemoRequestRepository struct {
	DB *sql.DB
}

func NewDemoRequestRepository(db *sql.DB) *DemoRequestRepository {
	return &DemoRequestRepository{DB: db}
}

const demoRequestColumns = `id, name, email, business_name, business_type,
	COALESCE(website_goals, ''), COALESCE(current_website, ''), COALESCE(phone, ''),
	status, COALESCE(demo_url, ''), follow_up_sent_at, created_at, updated_at`

func (r *DemoRequestRepository) Create(ctx context.Context, req *entity.DemoRequest) error {
	query := `
		INSERT INTO demo_requests (
			id, name, email, business_name, business_type,
			website_goals, current_website, phone,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		req.ID,
		req.Name,
		req.Email,
		req.BusinessName,
		req.BusinessType,
		nullString(req.WebsiteGoals),
		nullString(req.CurrentWebsite),
		nullString(req.Phone),
		req.Status,
		req.CreatedAt,
		req.UpdatedAt,
	)

	if err != nil {
		log.Printf("❌ demo_requests insert failed: %v", err)
		return err
	}

	return nil
}

func (r *DemoRequestRepository) FindByID(ctx context.Context, id string) (*entity.DemoRequest, error) {
	query := `SELECT ` + demoRequestColumns + ` FROM demo_requests WHERE id = $1`

	req, err := scanDemoRequest(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return req, nil
}

func (r *DemoRequestRepository) List(ctx context.Context, opts usecase.ListOptions) ([]*entity.DemoRequest, int, error) {
	builder := psql.Select(
		"id", "name", "email", "business_name", "business_type",
		"COALESCE(website_goals, '')", "COALESCE(current_website, '')", "COALESCE(phone, '')",
		"status", "COALESCE(demo_url, '')", "follow_up_sent_at", "created_at", "updated_at",
	).From("demo_requests")

	countBuilder := psql.Select("COUNT(*)").From("demo_requests")

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

	var requests []*entity.DemoRequest
	for rows.Next() {
		req, err := scanDemoRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
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

	return requests, total, nil
}

func (r *DemoRequestRepository) Update(ctx context.Context, id string, update usecase.DemoRequestUpdate) (*entity.DemoRequest, error) {
	builder := psql.Update("demo_requests").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + demoRequestColumns)

	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.DemoURL != nil {
		builder = builder.Set("demo_url", nullString(*update.DemoURL))
	}
	if update.FollowUpSentAt != nil {
		builder = builder.Set("follow_up_sent_at", *update.FollowUpSentAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	req, err := scanDemoRequest(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return req, nil
}

func (r *DemoRequestRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM demo_requests WHERE id = $1`, id)
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

func (r *DemoRequestRepository) Stats(ctx context.Context) (*usecase.DemoRequestStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PENDING'),
			COUNT(*) FILTER (WHERE status = 'IN_PROGRESS'),
			COUNT(*) FILTER (WHERE status = 'DELIVERED'),
			COUNT(*) FILTER (WHERE status = 'CONVERTED'),
			COUNT(*) FILTER (WHERE created_at >= date_trunc('month', NOW()))
		FROM demo_requests
	`

	var stats usecase.DemoRequestStats
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&stats.Total,
		&stats.Pending,
		&stats.InProgress,
		&stats.Delivered,
		&stats.Converted,
		&stats.ThisMonth,
	)
	if err != nil {
		return nil, err
	}

	stats.ConversionRate = ConversionRate(stats.Delivered, stats.Converted)

	return &stats, nil
}

// ConversionRate is converted / (delivered + converted) as a percentage,
// rounded to one decimal. Zero when nothing has been delivered yet.
func ConversionRate(delivered, converted int) float64 {
	completed := delivered + converted
	if completed == 0 {
		return 0
	}
	rate := float64(converted) / float64(completed) * 100
	return math.Round(rate*10) / 10
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDemoRequest(row rowScanner) (*entity.DemoRequest, error) {
	var req entity.DemoRequest
	var followUpSentAt sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.Name,
		&req.Email,
		&req.BusinessName,
		&req.BusinessType,
		&req.WebsiteGoals,
		&req.CurrentWebsite,
		&req.Phone,
		&req.Status,
		&req.DemoURL,
		&followUpSentAt,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if followUpSentAt.Valid {
		req.FollowUpSentAt = &followUpSentAt.Time
	}

	return &req, nil
}
